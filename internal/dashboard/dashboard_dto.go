package dashboard

import (
	"go-timeclock/internal/payroll"
	"go-timeclock/internal/timesheet"
)

// DashboardResponse is the single payload behind the worker home screen:
// who you are, where today's session stands, and what the period owes you.
type DashboardResponse struct {
	EmployeeID     string                     `json:"employee_id"`
	Name           string                     `json:"name"`
	JobTitle       string                     `json:"job_title"`
	Status         string                     `json:"status"`
	ScheduledToday bool                       `json:"scheduled_today"`
	CheckedIn      bool                       `json:"checked_in"`
	CheckedOut     bool                       `json:"checked_out"`
	CheckInTime    *string                    `json:"check_in_time"`
	CheckOutTime   *string                    `json:"check_out_time"`
	HourlyRate     string                     `json:"hourly_rate"`
	Timesheet      timesheet.OvertimeResponse `json:"timesheet"`
	Payroll        payroll.SummaryResponse    `json:"payroll"`
}
