package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/payrate"
	payrollerrors "go-timeclock/internal/payroll/errors"
	"go-timeclock/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]PayrollRowResponse, error)
	Summary(ctx context.Context, employeeID string) (SummaryResponse, error)
	MarkPaid(ctx context.Context, employeeID string) (SummaryResponse, error)
	MarkPaidBulk(ctx context.Context, req BulkMarkPaidRequest) (BulkMarkPaidResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  payrate.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	rates payrate.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rates:  rates,
		outbox: outbox,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) GetAll(ctx context.Context) ([]PayrollRowResponse, error) {
	rows, err := s.repo.FindActiveRows(ctx)
	if err != nil {
		s.logger.Error("list payroll rows failed", zap.Error(err))
		return nil, err
	}

	res := make([]PayrollRowResponse, len(rows))
	for i, row := range rows {
		rate, err := s.rates.EffectiveRate(ctx, row.HourlyRate, row.JobTitle)
		if err != nil {
			return nil, err
		}

		hours := decimal.NewFromFloat(row.HoursThisPeriod)
		res[i] = PayrollRowResponse{
			EmployeeID:      row.EmployeeID,
			EmployeeName:    row.FirstName + " " + row.LastName,
			JobTitle:        row.JobTitle,
			HoursThisPeriod: row.HoursThisPeriod,
			HourlyRate:      rate.StringFixed(2),
			AmountDue:       rate.Mul(hours).StringFixed(2),
			LastPaidDate:    formatPaidDate(row.LastPaidDate),
		}
	}
	return res, nil
}

// Summary reports the running cycle for one employee. An unknown ID yields
// the zero cycle rather than an error so dashboards render before the first
// accrual.
func (s *service) Summary(ctx context.Context, employeeID string) (SummaryResponse, error) {
	row, err := s.repo.FindRow(ctx, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SummaryResponse{EmployeeID: employeeID}, nil
		}
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		EmployeeID:      row.EmployeeID,
		HoursThisPeriod: row.HoursThisPeriod,
		LastPaidDate:    formatPaidDate(row.LastPaidDate),
	}, nil
}

func (s *service) MarkPaid(ctx context.Context, employeeID string) (SummaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	paidDate := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark paid begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SummaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindRow(ctx, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SummaryResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return SummaryResponse{}, err
	}

	rows, err := qtx.MarkPaid(ctx, employeeID, paidDate)
	if err != nil {
		s.logger.Error("mark paid update failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SummaryResponse{}, err
	}
	if rows == 0 {
		return SummaryResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	if s.outbox != nil {
		if err := s.stagePaidEvent(ctx, tx, rid, employeeID, row.HoursThisPeriod, paidDate); err != nil {
			s.logger.Error("stage payroll paid event failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return SummaryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark paid commit failed", zap.String("request_id", rid), zap.Error(err))
		return SummaryResponse{}, err
	}

	s.logger.Info("payroll cycle closed",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Float64("hours_paid", row.HoursThisPeriod),
	)

	paid := paidDate.Format(time.DateOnly)
	return SummaryResponse{
		EmployeeID:      employeeID,
		HoursThisPeriod: 0,
		LastPaidDate:    &paid,
	}, nil
}

func (s *service) stagePaidEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid, employeeID string,
	hoursPaid float64,
	paidDate time.Time,
) error {
	payload, err := json.Marshal(events.PayrollPaidEvent{
		EventType:  events.PayrollPaidType,
		EmployeeID: employeeID,
		HoursPaid:  hoursPaid,
		PaidDate:   paidDate.Format(time.DateOnly),
		OccurredAt: paidDate,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   employeeID,
		EventType:     events.PayrollPaidType,
		Topic:         events.PayrollPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// MarkPaidBulk closes cycles one employee at a time and keeps going past
// failures; the response reports how many actually reset.
func (s *service) MarkPaidBulk(
	ctx context.Context,
	req BulkMarkPaidRequest,
) (BulkMarkPaidResponse, error) {
	if len(req.EmployeeIDs) == 0 {
		return BulkMarkPaidResponse{}, payrollerrors.ErrNoEmployeesSelected
	}

	resp := BulkMarkPaidResponse{Requested: len(req.EmployeeIDs)}
	for _, employeeID := range req.EmployeeIDs {
		if _, err := s.MarkPaid(ctx, employeeID); err != nil {
			s.logger.Warn("bulk mark paid skipped employee",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			resp.Skipped = append(resp.Skipped, employeeID)
			continue
		}
		resp.Paid++
	}

	return resp, nil
}

func formatPaidDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.DateOnly)
	return &v
}
