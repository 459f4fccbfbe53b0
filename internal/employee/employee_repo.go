package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Exists(ctx context.Context, employeeID string) (bool, error)
	FindByID(ctx context.Context, employeeID string) (*Employee, error)
	FindAll(ctx context.Context, query ListEmployeesQuery) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	UpdateStatus(ctx context.Context, employeeID, status string) error
	Delete(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Exists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, employeeID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "employee_id = ?", employeeID).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context, query ListEmployeesQuery) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})

	if query.Search != "" {
		term := "%" + query.Search + "%"
		db = db.Where(
			"employee_id LIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR mobile LIKE ?",
			term, term, term, term, term,
		)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	db = db.Order("created_at DESC")
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var rows []Employee
	err := db.Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) UpdateStatus(ctx context.Context, employeeID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "employee_id = ?", employeeID).Error
}
