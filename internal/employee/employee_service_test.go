package employee

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn       func(tx *sql.Tx) Repository
	createFn       func(ctx context.Context, e *Employee) error
	existsFn       func(ctx context.Context, employeeID string) (bool, error)
	findByIDFn     func(ctx context.Context, employeeID string) (*Employee, error)
	findAllFn      func(ctx context.Context, query ListEmployeesQuery) ([]Employee, error)
	updateFn       func(ctx context.Context, e *Employee) error
	updateStatusFn func(ctx context.Context, employeeID, status string) error
	deleteFn       func(ctx context.Context, employeeID string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) Exists(ctx context.Context, employeeID string) (bool, error) {
	return f.existsFn(ctx, employeeID)
}
func (f *fakeRepo) FindByID(ctx context.Context, employeeID string) (*Employee, error) {
	return f.findByIDFn(ctx, employeeID)
}
func (f *fakeRepo) FindAll(ctx context.Context, query ListEmployeesQuery) ([]Employee, error) {
	return f.findAllFn(ctx, query)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) UpdateStatus(ctx context.Context, employeeID, status string) error {
	return f.updateStatusFn(ctx, employeeID, status)
}
func (f *fakeRepo) Delete(ctx context.Context, employeeID string) error {
	return f.deleteFn(ctx, employeeID)
}

func TestService_Create_AssignsSixDigitID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var created Employee
	repo := &fakeRepo{
		existsFn: func(ctx context.Context, employeeID string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, e *Employee) error { created = *e; return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		JobTitle:  "cook",
	})
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), resp.EmployeeID)
	assert.Equal(t, StatusActive, created.Status)
	assert.Equal(t, schedule.Default(), created.Schedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_RetriesCollidingIDs(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// The first three draws collide; the fourth is free.
	collisions := 3
	seen := map[string]bool{}
	repo := &fakeRepo{
		existsFn: func(ctx context.Context, employeeID string) (bool, error) {
			seen[employeeID] = true
			if collisions > 0 {
				collisions--
				return true, nil
			}
			return false, nil
		},
		createFn: func(ctx context.Context, e *Employee) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(seen), 4)
}

func TestService_Create_GivesUpWhenIDSpaceExhausted(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		existsFn: func(ctx context.Context, employeeID string) (bool, error) { return true, nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrIDGenerationExhausted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_RejectsEmptyPatch(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Update(context.Background(), "123456", UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrEmptyPatch)
}

func TestService_Update_AppliesOnlyProvidedFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	existing := &Employee{
		EmployeeID: "123456",
		FirstName:  "Ana",
		LastName:   "Silva",
		Email:      "ana@example.com",
		JobTitle:   "cook",
		Status:     StatusActive,
		Schedule:   schedule.Default(),
	}

	var updated Employee
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, employeeID string) (*Employee, error) {
			cp := *existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, e *Employee) error { updated = *e; return nil },
	}

	svc := NewService(db, repo)

	newTitle := "head cook"
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), "123456", UpdateEmployeeRequest{JobTitle: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "head cook", updated.JobTitle)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "head cook", resp.JobTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, employeeID, status string) error {
			if employeeID == "999999" {
				return gorm.ErrRecordNotFound
			}
			return nil
		},
	}

	svc := NewService(db, repo)
	ctx := context.Background()

	assert.NoError(t, svc.UpdateStatus(ctx, "123456", StatusSuspended))

	err := svc.UpdateStatus(ctx, "123456", "fired")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)

	err = svc.UpdateStatus(ctx, "999999", StatusActive)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_UpdateSchedule_RejectsInvalid(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	bad := schedule.Default()
	bad.Monday.Start = "25:00"
	_, err := svc.UpdateSchedule(context.Background(), "123456", bad)
	assert.Error(t, err)
}
