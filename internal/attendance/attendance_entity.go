package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is the ledger row for one employee on one calendar date. Rows are
// created on first check-in, closed once by check-out, and never deleted.
type Attendance struct {
	ID           uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID   string       `gorm:"column:employee_id;type:char(6);not null;uniqueIndex:uq_attendance_employee_day"`
	WorkDate     time.Time    `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_employee_day"`
	CheckInTime  time.Time    `gorm:"column:check_in_time;not null"`
	CheckOutTime *time.Time   `gorm:"column:check_out_time"`
	HoursWorked  float64      `gorm:"column:hours_worked;not null;default:0"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	Employee     *EmployeeRef `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Open reports whether this row is an in-progress session.
func (a *Attendance) Open() bool {
	return a.CheckOutTime == nil
}

type EmployeeRef struct {
	EmployeeID string `gorm:"column:employee_id;type:char(6);primaryKey"`
	FirstName  string `gorm:"column:first_name"`
	LastName   string `gorm:"column:last_name"`
	JobTitle   string `gorm:"column:job_title"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
