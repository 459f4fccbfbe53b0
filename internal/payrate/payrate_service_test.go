package payrate

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	employeeerrors "go-timeclock/internal/employee/errors"
	payrateerrors "go-timeclock/internal/payrate/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	getRoleRatesFn         func(ctx context.Context) (map[string]decimal.Decimal, error)
	upsertRoleRateFn       func(ctx context.Context, role string, rate decimal.Decimal) error
	getSettingFn           func(ctx context.Context, key string) (string, error)
	upsertSettingFn        func(ctx context.Context, key, value string) error
	setEmployeeRateFn      func(ctx context.Context, employeeID string, rate decimal.NullDecimal) (int64, error)
	clearOverridesByRoleFn func(ctx context.Context, role string) (int64, error)
	countActiveByRoleFn    func(ctx context.Context, role string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) GetRoleRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return f.getRoleRatesFn(ctx)
}
func (f *fakeRepo) UpsertRoleRate(ctx context.Context, role string, rate decimal.Decimal) error {
	return f.upsertRoleRateFn(ctx, role, rate)
}
func (f *fakeRepo) GetSetting(ctx context.Context, key string) (string, error) {
	return f.getSettingFn(ctx, key)
}
func (f *fakeRepo) UpsertSetting(ctx context.Context, key, value string) error {
	return f.upsertSettingFn(ctx, key, value)
}
func (f *fakeRepo) SetEmployeeRate(ctx context.Context, employeeID string, rate decimal.NullDecimal) (int64, error) {
	return f.setEmployeeRateFn(ctx, employeeID, rate)
}
func (f *fakeRepo) ClearOverridesByRole(ctx context.Context, role string) (int64, error) {
	return f.clearOverridesByRoleFn(ctx, role)
}
func (f *fakeRepo) CountActiveByRole(ctx context.Context, role string) (int64, error) {
	return f.countActiveByRoleFn(ctx, role)
}

func f64(v float64) *float64 { return &v }

func TestService_EffectiveRate_CacheMiss(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	repo := &fakeRepo{
		getRoleRatesFn: func(ctx context.Context) (map[string]decimal.Decimal, error) {
			return map[string]decimal.Decimal{"cook": decimal.NewFromInt(12)}, nil
		},
		getSettingFn: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, SettingDefaultHourlyRate, key)
			return "15.00", nil
		},
	}

	expectedTable := rateTable{
		DefaultRate: decimal.RequireFromString("15.00"),
		RoleRates:   map[string]decimal.Decimal{"cook": decimal.NewFromInt(12)},
	}
	jsonData, err := json.Marshal(expectedTable)
	assert.NoError(t, err)

	redisMock.ExpectGet(rateTableCacheKey).RedisNil()
	redisMock.ExpectSet(rateTableCacheKey, jsonData, 1*time.Hour).SetVal("OK")

	svc := NewService(nil, repo, rdb)

	got, err := svc.EffectiveRate(ctx, decimal.NullDecimal{}, "cook")
	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(12)))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_EffectiveRate_CacheHit(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	table := rateTable{
		DefaultRate: decimal.NewFromInt(15),
		RoleRates:   map[string]decimal.Decimal{"cook": decimal.NewFromInt(12)},
	}
	jsonData, _ := json.Marshal(table)
	redisMock.ExpectGet(rateTableCacheKey).SetVal(string(jsonData))

	repoCalls := 0
	repo := &fakeRepo{
		getRoleRatesFn: func(ctx context.Context) (map[string]decimal.Decimal, error) {
			repoCalls++
			return nil, nil
		},
	}

	svc := NewService(nil, repo, rdb)

	got, err := svc.EffectiveRate(ctx, decimal.NullDecimal{}, "barista")
	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(15)))
	assert.Zero(t, repoCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_SetRoleRate_InvalidatesCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	var savedRole string
	var savedRate decimal.Decimal
	repo := &fakeRepo{
		upsertRoleRateFn: func(ctx context.Context, role string, rate decimal.Decimal) error {
			savedRole = role
			savedRate = rate
			return nil
		},
	}

	redisMock.ExpectDel(rateTableCacheKey).SetVal(1)

	svc := NewService(nil, repo, rdb)

	err := svc.SetRoleRate(context.Background(), UpdateRoleRateRequest{Role: "cook", HourlyRate: f64(12.5)})
	assert.NoError(t, err)
	assert.Equal(t, "cook", savedRole)
	assert.True(t, savedRate.Equal(decimal.RequireFromString("12.50")))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_SetRoleRate_ZeroIsValid(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	var savedRate decimal.Decimal
	repo := &fakeRepo{
		upsertRoleRateFn: func(ctx context.Context, role string, rate decimal.Decimal) error {
			savedRate = rate
			return nil
		},
	}

	redisMock.ExpectDel(rateTableCacheKey).SetVal(1)

	svc := NewService(nil, repo, rdb)

	err := svc.SetRoleRate(context.Background(), UpdateRoleRateRequest{Role: "volunteer", HourlyRate: f64(0)})
	assert.NoError(t, err)
	assert.True(t, savedRate.Equal(decimal.Zero))
}

func TestService_NegativeRatesRejected(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, nil)
	ctx := context.Background()
	neg := -1.0

	err := svc.SetEmployeeRate(ctx, "123456", UpdateEmployeeRateRequest{HourlyRate: &neg})
	assert.ErrorIs(t, err, payrateerrors.ErrNegativeRate)

	err = svc.SetRoleRate(ctx, UpdateRoleRateRequest{Role: "cook", HourlyRate: &neg})
	assert.ErrorIs(t, err, payrateerrors.ErrNegativeRate)

	_, err = svc.BulkSetRoleRate(ctx, BulkRoleRateRequest{Role: "cook", HourlyRate: &neg})
	assert.ErrorIs(t, err, payrateerrors.ErrNegativeRate)

	err = svc.SetDefaultRate(ctx, UpdateDefaultRateRequest{HourlyRate: &neg})
	assert.ErrorIs(t, err, payrateerrors.ErrNegativeRate)
}

func TestService_SetEmployeeRate_ClearAndMissing(t *testing.T) {
	var gotRate decimal.NullDecimal
	repo := &fakeRepo{
		setEmployeeRateFn: func(ctx context.Context, employeeID string, rate decimal.NullDecimal) (int64, error) {
			gotRate = rate
			if employeeID == "999999" {
				return 0, nil
			}
			return 1, nil
		},
	}

	svc := NewService(nil, repo, nil)
	ctx := context.Background()

	// Null body clears the override.
	err := svc.SetEmployeeRate(ctx, "123456", UpdateEmployeeRateRequest{})
	assert.NoError(t, err)
	assert.False(t, gotRate.Valid)

	err = svc.SetEmployeeRate(ctx, "999999", UpdateEmployeeRateRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_BulkSetRoleRate(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeRepo{
		upsertRoleRateFn: func(ctx context.Context, role string, rate decimal.Decimal) error { return nil },
		clearOverridesByRoleFn: func(ctx context.Context, role string) (int64, error) {
			return 3, nil
		},
		countActiveByRoleFn: func(ctx context.Context, role string) (int64, error) {
			return 5, nil
		},
	}

	redisMock.ExpectDel(rateTableCacheKey).SetVal(1)

	svc := NewService(nil, repo, rdb)

	resp, err := svc.BulkSetRoleRate(context.Background(), BulkRoleRateRequest{
		Role:                     "cook",
		HourlyRate:               f64(14),
		ClearIndividualOverrides: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.EmployeesAffected)
	assert.Equal(t, int64(3), resp.OverridesCleared)
	assert.Equal(t, "14.00", resp.HourlyRate)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
