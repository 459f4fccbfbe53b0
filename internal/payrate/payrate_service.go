package payrate

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-timeclock/internal/employee/errors"
	payrateerrors "go-timeclock/internal/payrate/errors"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const rateTableCacheKey = "payrates:table:v1"

// rateTable is the cached snapshot rate resolution reads from: every role
// rate plus the system default.
type rateTable struct {
	DefaultRate decimal.Decimal            `json:"default_rate"`
	RoleRates   map[string]decimal.Decimal `json:"role_rates"`
}

//go:generate mockgen -source=payrate_service.go -destination=mock/payrate_service_mock.go -package=mock
type Service interface {
	EffectiveRate(ctx context.Context, override decimal.NullDecimal, jobTitle string) (decimal.Decimal, error)
	GetRates(ctx context.Context) (RatesResponse, error)
	SetEmployeeRate(ctx context.Context, employeeID string, req UpdateEmployeeRateRequest) error
	SetRoleRate(ctx context.Context, req UpdateRoleRateRequest) error
	BulkSetRoleRate(ctx context.Context, req BulkRoleRateRequest) (BulkRoleRateResponse, error)
	SetDefaultRate(ctx context.Context, req UpdateDefaultRateRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrate.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) EffectiveRate(
	ctx context.Context,
	override decimal.NullDecimal,
	jobTitle string,
) (decimal.Decimal, error) {
	table, err := s.loadRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return Resolve(override, jobTitle, table.RoleRates, table.DefaultRate), nil
}

func (s *service) loadRateTable(ctx context.Context) (rateTable, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, rateTableCacheKey).Result(); err == nil {
			var table rateTable
			if json.Unmarshal([]byte(cached), &table) == nil {
				return table, nil
			}
		}
	}

	v, err, _ := s.sf.Do(rateTableCacheKey, func() (interface{}, error) {
		roleRates, err := s.repo.GetRoleRates(ctx)
		if err != nil {
			return rateTable{}, err
		}

		defaultRate := FallbackDefaultRate
		raw, err := s.repo.GetSetting(ctx, SettingDefaultHourlyRate)
		if err != nil {
			return rateTable{}, err
		}
		if raw != "" {
			if parsed, err := decimal.NewFromString(raw); err == nil {
				defaultRate = parsed
			}
		}

		table := rateTable{DefaultRate: defaultRate, RoleRates: roleRates}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(table); err == nil {
				s.rdb.Set(ctx, rateTableCacheKey, jsonData, 1*time.Hour)
			}
		}

		return table, nil
	})

	if err != nil {
		return rateTable{}, err
	}

	return v.(rateTable), nil
}

func (s *service) invalidateRateTable(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, rateTableCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate rate table cache",
			zap.String("key", rateTableCacheKey),
			zap.Error(err),
		)
	}
}

func (s *service) GetRates(ctx context.Context) (RatesResponse, error) {
	table, err := s.loadRateTable(ctx)
	if err != nil {
		return RatesResponse{}, err
	}

	resp := RatesResponse{
		DefaultRate: table.DefaultRate.StringFixed(2),
		RoleRates:   make(map[string]string, len(table.RoleRates)),
	}
	for role, rate := range table.RoleRates {
		resp.RoleRates[role] = rate.StringFixed(2)
	}
	return resp, nil
}

func (s *service) SetEmployeeRate(
	ctx context.Context,
	employeeID string,
	req UpdateEmployeeRateRequest,
) error {
	rate := decimal.NullDecimal{}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return payrateerrors.ErrNegativeRate
		}
		rate = decimal.NewNullDecimal(decimal.NewFromFloat(*req.HourlyRate).Round(2))
	}

	rows, err := s.repo.SetEmployeeRate(ctx, employeeID, rate)
	if err != nil {
		s.logger.Error("set employee rate failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	if rows == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("employee rate updated",
		zap.String("employee_id", employeeID),
		zap.Bool("cleared", !rate.Valid),
	)
	return nil
}

func (s *service) SetRoleRate(ctx context.Context, req UpdateRoleRateRequest) error {
	if req.HourlyRate == nil || *req.HourlyRate < 0 {
		return payrateerrors.ErrNegativeRate
	}

	rate := decimal.NewFromFloat(*req.HourlyRate).Round(2)
	if err := s.repo.UpsertRoleRate(ctx, req.Role, rate); err != nil {
		s.logger.Error("set role rate failed", zap.String("role", req.Role), zap.Error(err))
		return err
	}

	s.invalidateRateTable(ctx)

	s.logger.Info("role rate updated",
		zap.String("role", req.Role),
		zap.String("hourly_rate", rate.StringFixed(2)),
	)
	return nil
}

// BulkSetRoleRate applies a role rate and optionally strips individual
// overrides so the new role rate takes effect for everyone with the title.
// The returned count is how many active employees the new rate reaches.
func (s *service) BulkSetRoleRate(
	ctx context.Context,
	req BulkRoleRateRequest,
) (BulkRoleRateResponse, error) {
	if req.HourlyRate == nil || *req.HourlyRate < 0 {
		return BulkRoleRateResponse{}, payrateerrors.ErrNegativeRate
	}

	rate := decimal.NewFromFloat(*req.HourlyRate).Round(2)

	if err := s.repo.UpsertRoleRate(ctx, req.Role, rate); err != nil {
		s.logger.Error("bulk role rate upsert failed", zap.String("role", req.Role), zap.Error(err))
		return BulkRoleRateResponse{}, err
	}

	var cleared int64
	if req.ClearIndividualOverrides {
		var err error
		cleared, err = s.repo.ClearOverridesByRole(ctx, req.Role)
		if err != nil {
			s.logger.Error("clear overrides failed", zap.String("role", req.Role), zap.Error(err))
			return BulkRoleRateResponse{}, err
		}
	}

	affected, err := s.repo.CountActiveByRole(ctx, req.Role)
	if err != nil {
		return BulkRoleRateResponse{}, err
	}

	s.invalidateRateTable(ctx)

	s.logger.Info("bulk role rate applied",
		zap.String("role", req.Role),
		zap.Int64("employees_affected", affected),
		zap.Int64("overrides_cleared", cleared),
	)

	return BulkRoleRateResponse{
		Role:              req.Role,
		HourlyRate:        rate.StringFixed(2),
		EmployeesAffected: affected,
		OverridesCleared:  cleared,
	}, nil
}

func (s *service) SetDefaultRate(ctx context.Context, req UpdateDefaultRateRequest) error {
	if req.HourlyRate == nil || *req.HourlyRate < 0 {
		return payrateerrors.ErrNegativeRate
	}

	rate := decimal.NewFromFloat(*req.HourlyRate).Round(2)
	if err := s.repo.UpsertSetting(ctx, SettingDefaultHourlyRate, rate.StringFixed(2)); err != nil {
		s.logger.Error("set default rate failed", zap.Error(err))
		return err
	}

	s.invalidateRateTable(ctx)

	s.logger.Info("default rate updated", zap.String("hourly_rate", rate.StringFixed(2)))
	return nil
}
