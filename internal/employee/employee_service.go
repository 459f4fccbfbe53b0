package employee

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/schedule"
	"go-timeclock/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxIDAttempts = 1000

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, employeeID, status string) error
	UpdateSchedule(ctx context.Context, employeeID string, weekly schedule.Weekly) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("job_title", req.JobTitle),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, err := s.generateID(ctx, qtx)
	if err != nil {
		s.logger.Error("create employee generate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	e := &Employee{
		EmployeeID: employeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Gender:     req.Gender,
		DOB:        req.DOB,
		Mobile:     req.Mobile,
		Address:    req.Address,
		JobTitle:   req.JobTitle,
		Notes:      req.Notes,
		Status:     status,
		Schedule:   schedule.Default(),
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.EmployeeID),
	)

	return mapToResponse(*e), nil
}

// generateID draws random six-digit candidates and rejects collisions with
// existing employees; attempts are bounded so a near-full ID space fails
// loudly instead of looping forever.
func (s *service) generateID(ctx context.Context, repo Repository) (string, error) {
	for attempts := 0; attempts < maxIDAttempts; attempts++ {
		candidate := fmt.Sprintf("%06d", rand.Intn(1_000_000))
		exists, err := repo.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", employeeerrors.ErrIDGenerationExhausted
}

func (s *service) GetAll(
	ctx context.Context,
	query ListEmployeesQuery,
) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(
	ctx context.Context,
	employeeID string,
) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(
	ctx context.Context,
	employeeID string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if req == (UpdateEmployeeRequest{}) {
		return EmployeeResponse{}, employeeerrors.ErrEmptyPatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	applyPatch(e, req)

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", employeeID))

	return mapToResponse(*e), nil
}

func (s *service) UpdateStatus(ctx context.Context, employeeID, status string) error {
	if status != StatusActive && status != StatusSuspended {
		return employeeerrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, employeeID, status); err != nil {
		s.logger.Error("update employee status failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("employee status updated",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return nil
}

func (s *service) UpdateSchedule(
	ctx context.Context,
	employeeID string,
	weekly schedule.Weekly,
) (EmployeeResponse, error) {
	if err := weekly.Validate(); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.Schedule = weekly

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee schedule updated", zap.String("employee_id", employeeID))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		s.logger.Error("delete employee failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", employeeID))
	return nil
}

func applyPatch(e *Employee, req UpdateEmployeeRequest) {
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Gender != nil {
		e.Gender = *req.Gender
	}
	if req.DOB != nil {
		e.DOB = *req.DOB
	}
	if req.Mobile != nil {
		e.Mobile = *req.Mobile
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.JobTitle != nil {
		e.JobTitle = *req.JobTitle
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:      e.EmployeeID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Gender:          e.Gender,
		DOB:             e.DOB,
		Mobile:          e.Mobile,
		Address:         e.Address,
		JobTitle:        e.JobTitle,
		Notes:           e.Notes,
		Status:          e.Status,
		Schedule:        e.Schedule,
		HoursThisPeriod: e.HoursThisPeriod,
		CreatedAt:       e.CreatedAt.Format(time.DateTime),
	}
	if e.HourlyRate.Valid {
		v := e.HourlyRate.Decimal.StringFixed(2)
		resp.HourlyRate = &v
	}
	if e.LastPaidDate != nil {
		v := e.LastPaidDate.Format(time.DateOnly)
		resp.LastPaidDate = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
