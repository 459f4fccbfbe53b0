package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRow is the per-employee payroll projection read off the employees
// table: the running accrual plus the fields rate resolution needs.
type PayrollRow struct {
	EmployeeID      string
	FirstName       string
	LastName        string
	JobTitle        string
	Status          string
	HoursThisPeriod float64
	LastPaidDate    *time.Time
	HourlyRate      decimal.NullDecimal
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Accrue(ctx context.Context, employeeID string, hours float64) (int64, error)
	MarkPaid(ctx context.Context, employeeID string, paidDate time.Time) (int64, error)
	FindRow(ctx context.Context, employeeID string) (*PayrollRow, error)
	FindActiveRows(ctx context.Context) ([]PayrollRow, error)
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Accrue adds closed-session hours to the employee's running period total.
// It runs on the caller's transaction so the accrual commits or rolls back
// together with the ledger close.
func (r *repository) Accrue(ctx context.Context, employeeID string, hours float64) (int64, error) {
	query := `
UPDATE employees
SET
	hours_this_period = COALESCE(hours_this_period, 0) + $2,
	updated_at = NOW()
WHERE employee_id = $1
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, hours)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkPaid closes the employee's payroll cycle: the running total resets to
// zero and the paid date is stamped, whatever the total was.
func (r *repository) MarkPaid(ctx context.Context, employeeID string, paidDate time.Time) (int64, error) {
	query := `
UPDATE employees
SET
	hours_this_period = 0,
	last_paid_date = $2,
	updated_at = NOW()
WHERE employee_id = $1
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, paidDate.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) FindRow(ctx context.Context, employeeID string) (*PayrollRow, error) {
	query := `
SELECT
	employee_id, first_name, last_name, job_title, status,
	COALESCE(hours_this_period, 0), last_paid_date, hourly_rate
FROM employees
WHERE employee_id = $1
`
	var row PayrollRow
	err := r.queryer().QueryRowContext(ctx, query, employeeID).Scan(
		&row.EmployeeID,
		&row.FirstName,
		&row.LastName,
		&row.JobTitle,
		&row.Status,
		&row.HoursThisPeriod,
		&row.LastPaidDate,
		&row.HourlyRate,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindActiveRows(ctx context.Context) ([]PayrollRow, error) {
	query := `
SELECT
	employee_id, first_name, last_name, job_title, status,
	COALESCE(hours_this_period, 0), last_paid_date, hourly_rate
FROM employees
WHERE status = 'active'
ORDER BY first_name ASC, last_name ASC
`
	rows, err := r.queryer().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PayrollRow
	for rows.Next() {
		var row PayrollRow
		if err := rows.Scan(
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.JobTitle,
			&row.Status,
			&row.HoursThisPeriod,
			&row.LastPaidDate,
			&row.HourlyRate,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) queryer() interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
