package payroll

type BulkMarkPaidRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,len=6,numeric"`
}

type BulkMarkPaidResponse struct {
	Requested int      `json:"requested"`
	Paid      int      `json:"paid"`
	Skipped   []string `json:"skipped,omitempty"`
}

type SummaryResponse struct {
	EmployeeID      string  `json:"employee_id"`
	HoursThisPeriod float64 `json:"hours_this_period"`
	LastPaidDate    *string `json:"last_paid_date"`
}

type PayrollRowResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	JobTitle        string  `json:"job_title"`
	HoursThisPeriod float64 `json:"hours_this_period"`
	HourlyRate      string  `json:"hourly_rate"`
	AmountDue       string  `json:"amount_due"`
	LastPaidDate    *string `json:"last_paid_date"`
}
