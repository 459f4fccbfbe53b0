package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-timeclock/internal/attendance/errors"
	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/payroll"
	"go-timeclock/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetAll(ctx context.Context, query ListAttendanceQuery) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	payroll   payroll.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	payrollRepo payroll.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		payroll:   payrollRepo,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now()
	today := dayOf(now)

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if !emp.Active() {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotActive
	}
	if !emp.Schedule.EnabledOn(now.Weekday()) {
		return AttendanceResponse{}, attendanceerrors.ErrNotScheduledToday
	}

	_, err = s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-in lookup failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	a := &Attendance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		WorkDate:    today,
		CheckInTime: now,
	}

	// The unique index on (employee_id, work_date) settles concurrent
	// check-ins; a duplicate key from a racing request maps to the same
	// already-checked-in error the pre-read would have produced.
	if err := s.repo.Create(ctx, a); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee checked in",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("work_date", today.Format(time.DateOnly)),
	)

	return mapToResponse(*a), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now()
	today := dayOf(now)

	a, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}
	if !a.Open() {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	hours := now.Sub(a.CheckInTime).Hours()
	if hours < 0 {
		hours = 0
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-out begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.CloseSession(ctx, employeeID, today, now, hours)
	if err != nil {
		s.logger.Error("check-out close session failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}
	if rows == 0 {
		// A concurrent check-out won the conditional update.
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	payrollQtx := s.payroll.WithTx(tx)
	if _, err := payrollQtx.Accrue(ctx, employeeID, hours); err != nil {
		s.logger.Error("check-out accrue failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-out commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	a.CheckOutTime = &now
	a.HoursWorked = hours

	s.logger.Info("employee checked out",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Float64("hours_worked", hours),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, query ListAttendanceQuery) ([]AttendanceResponse, error) {
	if query.EmployeeID != "" {
		exists, err := s.employees.Exists(ctx, query.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
	}

	rows, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logger.Error("list attendances failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

// dayOf truncates a timestamp to local midnight, the ledger's day key.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID,
		WorkDate:    a.WorkDate.Format(time.DateOnly),
		CheckInTime: a.CheckInTime.Format(time.DateTime),
		HoursWorked: a.HoursWorked,
	}
	if a.CheckOutTime != nil {
		v := a.CheckOutTime.Format(time.DateTime)
		resp.CheckOutTime = &v
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FirstName + " " + a.Employee.LastName
		resp.JobTitle = a.Employee.JobTitle
	}
	return resp
}
