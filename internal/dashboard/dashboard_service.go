package dashboard

import (
	"context"
	"errors"
	"time"

	"go-timeclock/internal/attendance"
	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/payrate"
	"go-timeclock/internal/payroll"
	"go-timeclock/internal/timesheet"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TodayLedger reads today's attendance row for the session state block.
type TodayLedger interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, employeeID string) (DashboardResponse, error)
}

type service struct {
	employees employee.Repository
	ledger    TodayLedger
	sheets    timesheet.Service
	rates     payrate.Service
	cycles    payroll.Service
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	employees employee.Repository,
	ledger TodayLedger,
	sheets timesheet.Service,
	rates payrate.Service,
	cycles payroll.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees: employees,
		ledger:    ledger,
		sheets:    sheets,
		rates:     rates,
		cycles:    cycles,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) GetMe(ctx context.Context, employeeID string) (DashboardResponse, error) {
	now := s.now()

	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DashboardResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return DashboardResponse{}, err
	}

	resp := DashboardResponse{
		EmployeeID:     e.EmployeeID,
		Name:           e.FirstName + " " + e.LastName,
		JobTitle:       e.JobTitle,
		Status:         e.Status,
		ScheduledToday: e.Schedule.EnabledOn(now.Weekday()),
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	row, err := s.ledger.FindByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case err == nil:
		resp.CheckedIn = true
		in := row.CheckInTime.Format(time.DateTime)
		resp.CheckInTime = &in
		if !row.Open() {
			resp.CheckedOut = true
			out := row.CheckOutTime.Format(time.DateTime)
			resp.CheckOutTime = &out
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No session yet today.
	default:
		return DashboardResponse{}, err
	}

	sheet, err := s.sheets.Overtime(ctx, employeeID)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.Timesheet = sheet

	rate, err := s.rates.EffectiveRate(ctx, e.HourlyRate, e.JobTitle)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.HourlyRate = rate.StringFixed(2)

	cycle, err := s.cycles.Summary(ctx, employeeID)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.Payroll = cycle

	return resp, nil
}
