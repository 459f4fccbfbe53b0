package payrate

type UpdateEmployeeRateRequest struct {
	// A null rate clears the individual override.
	HourlyRate *float64 `json:"hourly_rate"`
}

// Pointers so a zero rate binds; `required` on a plain float64 would reject
// it as the missing value.
type UpdateRoleRateRequest struct {
	Role       string   `json:"role" binding:"required"`
	HourlyRate *float64 `json:"hourly_rate" binding:"required"`
}

type BulkRoleRateRequest struct {
	Role                     string   `json:"role" binding:"required"`
	HourlyRate               *float64 `json:"hourly_rate" binding:"required"`
	ClearIndividualOverrides bool     `json:"clear_individual_overrides"`
}

type UpdateDefaultRateRequest struct {
	HourlyRate *float64 `json:"hourly_rate" binding:"required"`
}

type BulkRoleRateResponse struct {
	Role              string `json:"role"`
	HourlyRate        string `json:"hourly_rate"`
	EmployeesAffected int64  `json:"employees_affected"`
	OverridesCleared  int64  `json:"overrides_cleared"`
}

type RatesResponse struct {
	DefaultRate string            `json:"default_rate"`
	RoleRates   map[string]string `json:"role_rates"`
}
