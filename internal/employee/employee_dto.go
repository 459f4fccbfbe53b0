package employee

import "go-timeclock/internal/schedule"

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
	JobTitle  string `json:"job_title"`
	Notes     string `json:"notes"`
	Status    string `json:"status" binding:"omitempty,oneof=active suspended"`
}

// UpdateEmployeeRequest is a patch object: only non-nil fields are applied,
// and the whole patch is validated before any field is written.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Gender    *string `json:"gender"`
	DOB       *string `json:"dob"`
	Mobile    *string `json:"mobile"`
	Address   *string `json:"address"`
	JobTitle  *string `json:"job_title"`
	Notes     *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

type UpdateScheduleRequest struct {
	Schedule schedule.Weekly `json:"schedule" binding:"required"`
}

type ListEmployeesQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=active suspended"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1"`
}

type EmployeeResponse struct {
	EmployeeID      string          `json:"employee_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Gender          string          `json:"gender,omitempty"`
	DOB             string          `json:"dob,omitempty"`
	Mobile          string          `json:"mobile,omitempty"`
	Address         string          `json:"address,omitempty"`
	JobTitle        string          `json:"job_title,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	Schedule        schedule.Weekly `json:"schedule"`
	HourlyRate      *string         `json:"hourly_rate,omitempty"`
	HoursThisPeriod float64         `json:"hours_this_period"`
	LastPaidDate    *string         `json:"last_paid_date,omitempty"`
	CreatedAt       string          `json:"created_at"`
}
