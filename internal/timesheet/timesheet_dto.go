package timesheet

type OvertimeResponse struct {
	HoursToday       float64 `json:"hours_today"`
	HoursThisWeek    float64 `json:"hours_this_week"`
	DailyThreshold   float64 `json:"daily_threshold"`
	WeeklyThreshold  float64 `json:"weekly_threshold"`
	OvertimeToday    float64 `json:"overtime_today"`
	OvertimeThisWeek float64 `json:"overtime_this_week"`
	IsOvertimeToday  bool    `json:"is_overtime_today"`
	IsOvertimeWeek   bool    `json:"is_overtime_week"`
}
