package employee

import (
	"time"

	"go-timeclock/internal/schedule"

	"github.com/shopspring/decimal"
)

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type Employee struct {
	EmployeeID      string              `gorm:"column:employee_id;type:char(6);primaryKey"`
	FirstName       string              `gorm:"column:first_name;not null"`
	LastName        string              `gorm:"column:last_name;not null"`
	Email           string              `gorm:"column:email;uniqueIndex:uq_employee_email"`
	Gender          string              `gorm:"column:gender"`
	DOB             string              `gorm:"column:dob"`
	Mobile          string              `gorm:"column:mobile"`
	Address         string              `gorm:"column:address"`
	JobTitle        string              `gorm:"column:job_title"`
	Notes           string              `gorm:"column:notes;type:text"`
	Status          string              `gorm:"column:status;type:varchar(20);not null;default:active"`
	Schedule        schedule.Weekly     `gorm:"column:schedule;type:jsonb"`
	HourlyRate      decimal.NullDecimal `gorm:"column:hourly_rate;type:numeric(10,2)"`
	HoursThisPeriod float64             `gorm:"column:hours_this_period;not null;default:0"`
	LastPaidDate    *time.Time          `gorm:"column:last_paid_date;type:date"`
	CreatedAt       time.Time           `gorm:"column:created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Active reports whether the employee may use worker-facing operations.
func (e *Employee) Active() bool {
	return e.Status == StatusActive
}
