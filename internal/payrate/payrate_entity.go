package payrate

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoleRate is the middle tier of rate resolution: one hourly rate per job
// title, applied to every employee with that title unless an individual
// override exists.
type RoleRate struct {
	Role       string          `gorm:"column:role;primaryKey;size:100"`
	HourlyRate decimal.Decimal `gorm:"column:hourly_rate;type:numeric(10,2);not null"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (RoleRate) TableName() string {
	return "role_rates"
}

// Setting is a key/value row for operator-tunable configuration.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey;size:64"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

const SettingDefaultHourlyRate = "default_hourly_rate"

// FallbackDefaultRate applies when the settings row is missing entirely.
var FallbackDefaultRate = decimal.NewFromInt(15)
