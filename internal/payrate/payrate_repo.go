package payrate

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payrate_repo.go -destination=mock/payrate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetRoleRates(ctx context.Context) (map[string]decimal.Decimal, error)
	UpsertRoleRate(ctx context.Context, role string, rate decimal.Decimal) error
	GetSetting(ctx context.Context, key string) (string, error)
	UpsertSetting(ctx context.Context, key, value string) error
	SetEmployeeRate(ctx context.Context, employeeID string, rate decimal.NullDecimal) (int64, error)
	ClearOverridesByRole(ctx context.Context, role string) (int64, error)
	CountActiveByRole(ctx context.Context, role string) (int64, error)
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

func (r *repository) GetRoleRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	var rows []RoleRate
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		rates[row.Role] = row.HourlyRate
	}
	return rates, nil
}

func (r *repository) UpsertRoleRate(ctx context.Context, role string, rate decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role"}},
			DoUpdates: clause.AssignmentColumns([]string{"hourly_rate", "updated_at"}),
		}).
		Create(&RoleRate{Role: role, HourlyRate: rate}).Error
}

// GetSetting returns the stored value or an empty string when the key has
// never been written.
func (r *repository) GetSetting(ctx context.Context, key string) (string, error) {
	var s Setting
	err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *repository) UpsertSetting(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&Setting{Key: key, Value: value}).Error
}

// SetEmployeeRate writes or clears the individual override. A null rate
// removes the override so the employee falls back to role or default rates.
func (r *repository) SetEmployeeRate(
	ctx context.Context,
	employeeID string,
	rate decimal.NullDecimal,
) (int64, error) {
	var value any
	if rate.Valid {
		value = rate.Decimal
	}

	res := r.db.WithContext(ctx).
		Exec("UPDATE employees SET hourly_rate = ?, updated_at = NOW() WHERE employee_id = ?", value, employeeID)
	return res.RowsAffected, res.Error
}

func (r *repository) ClearOverridesByRole(ctx context.Context, role string) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE employees SET hourly_rate = NULL, updated_at = NOW() WHERE job_title = ? AND hourly_rate IS NOT NULL", role)
	return res.RowsAffected, res.Error
}

func (r *repository) CountActiveByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("job_title = ? AND status = ?", role, "active").
		Count(&count).Error
	return count, err
}
