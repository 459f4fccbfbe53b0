package app

import (
	"errors"

	"go-timeclock/internal/attendance"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/payrate"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at);
`

// Migrate brings the schema up on startup and seeds the default hourly rate
// the first time the database comes alive.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&payrate.RoleRate{},
		&payrate.Setting{},
	); err != nil {
		return err
	}

	if err := db.Exec(outboxDDL).Error; err != nil {
		return err
	}

	if err := seedDefaultRate(db); err != nil {
		return err
	}

	zap.L().Info("database migrations applied")
	return nil
}

func seedDefaultRate(db *gorm.DB) error {
	var s payrate.Setting
	err := db.First(&s, "key = ?", payrate.SettingDefaultHourlyRate).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&payrate.Setting{
		Key:   payrate.SettingDefaultHourlyRate,
		Value: payrate.FallbackDefaultRate.StringFixed(2),
	}).Error
}
