package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Attendance, error)
	FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	FindAll(ctx context.Context, query ListAttendanceQuery) ([]Attendance, error)
	CloseSession(ctx context.Context, employeeID string, workDate, checkOut time.Time, hours float64) (int64, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(
	ctx context.Context,
	employeeID string,
	workDate time.Time,
) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "employee_id = ? AND work_date = ?", employeeID, workDate.Format(time.DateOnly)).Error
	return &a, err
}

// FindRange returns the ledger rows for one employee whose work_date falls in
// [start, end), oldest first.
func (r *repository) FindRange(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date >= ? AND work_date < ?",
			employeeID, start.Format(time.DateOnly), end.Format(time.DateOnly)).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context, query ListAttendanceQuery) ([]Attendance, error) {
	db := r.db.WithContext(ctx).Model(&Attendance{}).Preload("Employee")

	if query.EmployeeID != "" {
		db = db.Where("employee_id = ?", query.EmployeeID)
	}
	if query.Date != "" {
		db = db.Where("work_date = ?", query.Date)
	}
	if query.StartDate != "" {
		db = db.Where("work_date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		db = db.Where("work_date <= ?", query.EndDate)
	}
	db = db.Order("work_date DESC, check_in_time DESC")
	limit := query.Limit
	if limit == 0 {
		limit = 100
	}
	db = db.Limit(limit)

	var rows []Attendance
	err := db.Find(&rows).Error
	return rows, err
}

// CloseSession stamps the check-out on an open row. The check_out_time guard
// makes the transition first-writer-wins; callers must treat zero rows as a
// lost race.
func (r *repository) CloseSession(
	ctx context.Context,
	employeeID string,
	workDate, checkOut time.Time,
	hours float64,
) (int64, error) {
	const q = `
		UPDATE attendances
		SET check_out_time = $1, hours_worked = $2
		WHERE employee_id = $3 AND work_date = $4 AND check_out_time IS NULL`

	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, q, checkOut, hours, employeeID, workDate.Format(time.DateOnly))
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}

	res := r.db.WithContext(ctx).Exec(q, checkOut, hours, employeeID, workDate.Format(time.DateOnly))
	return res.RowsAffected, res.Error
}
