package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_ListPending_CarriesRequestID(t *testing.T) {
	db, mock, _ := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	defer db.Close()

	createdAt := time.Date(2026, time.January, 9, 17, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id",
		"event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"evt-1", "req-abc", "payroll", "123456",
		"payroll.paid", "staff.payroll.cycle.v1", []byte(`{}`), OutboxStatusPending, 0, createdAt,
	)
	mock.ExpectQuery(`SELECT\s+id::text,\s+COALESCE\(request_id, ''\)`).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)

	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "evt-1", events[0].ID)
		assert.Equal(t, "req-abc", events[0].RequestID)
		assert.Equal(t, "staff.payroll.cycle.v1", events[0].Topic)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
