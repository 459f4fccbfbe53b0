package payrate

import "github.com/shopspring/decimal"

// Resolve picks the effective hourly rate for one employee. Precedence is
// fixed: individual override, then the rate for the employee's job title,
// then the system default.
func Resolve(
	override decimal.NullDecimal,
	jobTitle string,
	roleRates map[string]decimal.Decimal,
	defaultRate decimal.Decimal,
) decimal.Decimal {
	if override.Valid {
		return override.Decimal
	}
	if rate, ok := roleRates[jobTitle]; ok {
		return rate
	}
	return defaultRate
}
