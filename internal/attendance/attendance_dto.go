package attendance

type ListAttendanceQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,len=6,numeric"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit" binding:"omitempty,gte=1,lte=500"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	JobTitle     string  `json:"job_title,omitempty"`
	WorkDate     string  `json:"work_date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	HoursWorked  float64 `json:"hours_worked"`
}
