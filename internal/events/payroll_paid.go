package events

import "time"

const (
	PayrollPaidTopic = "staff.payroll.cycle.v1"
	PayrollPaidType  = "payroll.paid"
)

// PayrollPaidEvent is emitted once per employee when a payroll cycle closes.
// HoursPaid carries the accrued hours that were reset by the cycle.
type PayrollPaidEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	HoursPaid  float64   `json:"hours_paid"`
	PaidDate   string    `json:"paid_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
