package timesheet

import (
	"context"
	"errors"
	"time"

	"go-timeclock/internal/attendance"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dailyOvertimeThreshold  = 8.0
	weeklyOvertimeThreshold = 40.0
)

// Ledger is the slice of the attendance store the timesheet math reads.
type Ledger interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error)
	FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	HoursToday(ctx context.Context, employeeID string) (float64, error)
	HoursThisWeek(ctx context.Context, employeeID string) (float64, error)
	Overtime(ctx context.Context, employeeID string) (OvertimeResponse, error)
}

type service struct {
	ledger Ledger
	logger *zap.Logger
	now    func() time.Time
}

func NewService(ledger Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{ledger: ledger, logger: l, now: time.Now}
}

// HoursToday is the closed total for today's row, or the live running delta
// while the session is still open. No row means zero.
func (s *service) HoursToday(ctx context.Context, employeeID string) (float64, error) {
	now := s.now()

	row, err := s.ledger.FindByEmployeeAndDate(ctx, employeeID, dayOf(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return sessionHours(row, now), nil
}

// HoursThisWeek sums the ledger from Monday midnight through now. Only
// today's open session contributes a live running delta; a row left open on
// an earlier day counts its stored total, never the wall clock since then.
func (s *service) HoursThisWeek(ctx context.Context, employeeID string) (float64, error) {
	now := s.now()
	weekStart := startOfWeek(now)
	today := dayOf(now)
	end := today.AddDate(0, 0, 1)

	rows, err := s.ledger.FindRange(ctx, employeeID, weekStart, end)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range rows {
		row := &rows[i]
		if row.Open() && !dayOf(row.WorkDate).Equal(today) {
			total += row.HoursWorked
			continue
		}
		total += sessionHours(row, now)
	}
	return total, nil
}

func (s *service) Overtime(ctx context.Context, employeeID string) (OvertimeResponse, error) {
	today, err := s.HoursToday(ctx, employeeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	week, err := s.HoursThisWeek(ctx, employeeID)
	if err != nil {
		return OvertimeResponse{}, err
	}

	overToday := max(0, today-dailyOvertimeThreshold)
	overWeek := max(0, week-weeklyOvertimeThreshold)

	return OvertimeResponse{
		HoursToday:       today,
		HoursThisWeek:    week,
		DailyThreshold:   dailyOvertimeThreshold,
		WeeklyThreshold:  weeklyOvertimeThreshold,
		OvertimeToday:    overToday,
		OvertimeThisWeek: overWeek,
		IsOvertimeToday:  overToday > 0,
		IsOvertimeWeek:   overWeek > 0,
	}, nil
}

func sessionHours(row *attendance.Attendance, now time.Time) float64 {
	if !row.Open() {
		return row.HoursWorked
	}
	live := now.Sub(row.CheckInTime).Hours()
	if live < 0 {
		return 0
	}
	return live
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday midnight that opens the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dayOf(t).AddDate(0, 0, -offset)
}
