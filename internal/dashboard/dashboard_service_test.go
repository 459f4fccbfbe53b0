package dashboard

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-timeclock/internal/attendance"
	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/payrate"
	"go-timeclock/internal/payroll"
	"go-timeclock/internal/schedule"
	"go-timeclock/internal/timesheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployees struct {
	findByIDFn func(ctx context.Context, employeeID string) (*employee.Employee, error)
}

func (f *fakeEmployees) WithTx(tx *sql.Tx) employee.Repository                  { return f }
func (f *fakeEmployees) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployees) Exists(ctx context.Context, employeeID string) (bool, error) {
	return false, nil
}
func (f *fakeEmployees) FindByID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, employeeID)
}
func (f *fakeEmployees) FindAll(ctx context.Context, query employee.ListEmployeesQuery) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployees) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployees) UpdateStatus(ctx context.Context, employeeID, status string) error {
	return nil
}
func (f *fakeEmployees) Delete(ctx context.Context, employeeID string) error { return nil }

type fakeLedger struct {
	row *attendance.Attendance
}

func (f *fakeLedger) FindByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	if f.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.row, nil
}

type fakeSheets struct {
	overtime timesheet.OvertimeResponse
}

func (f *fakeSheets) HoursToday(ctx context.Context, employeeID string) (float64, error) {
	return f.overtime.HoursToday, nil
}
func (f *fakeSheets) HoursThisWeek(ctx context.Context, employeeID string) (float64, error) {
	return f.overtime.HoursThisWeek, nil
}
func (f *fakeSheets) Overtime(ctx context.Context, employeeID string) (timesheet.OvertimeResponse, error) {
	return f.overtime, nil
}

type fakeRates struct {
	rate decimal.Decimal
}

func (f *fakeRates) EffectiveRate(ctx context.Context, override decimal.NullDecimal, jobTitle string) (decimal.Decimal, error) {
	return f.rate, nil
}
func (f *fakeRates) GetRates(ctx context.Context) (payrate.RatesResponse, error) {
	return payrate.RatesResponse{}, nil
}
func (f *fakeRates) SetEmployeeRate(ctx context.Context, employeeID string, req payrate.UpdateEmployeeRateRequest) error {
	return nil
}
func (f *fakeRates) SetRoleRate(ctx context.Context, req payrate.UpdateRoleRateRequest) error {
	return nil
}
func (f *fakeRates) BulkSetRoleRate(ctx context.Context, req payrate.BulkRoleRateRequest) (payrate.BulkRoleRateResponse, error) {
	return payrate.BulkRoleRateResponse{}, nil
}
func (f *fakeRates) SetDefaultRate(ctx context.Context, req payrate.UpdateDefaultRateRequest) error {
	return nil
}

type fakeCycles struct {
	summary payroll.SummaryResponse
}

func (f *fakeCycles) GetAll(ctx context.Context) ([]payroll.PayrollRowResponse, error) {
	return nil, nil
}
func (f *fakeCycles) Summary(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
	return f.summary, nil
}
func (f *fakeCycles) MarkPaid(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
	return payroll.SummaryResponse{}, nil
}
func (f *fakeCycles) MarkPaidBulk(ctx context.Context, req payroll.BulkMarkPaidRequest) (payroll.BulkMarkPaidResponse, error) {
	return payroll.BulkMarkPaidResponse{}, nil
}

func TestService_GetMe(t *testing.T) {
	wednesday := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local)
	in := wednesday.Add(-3 * time.Hour)

	employees := &fakeEmployees{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{
				EmployeeID: id,
				FirstName:  "Ana",
				LastName:   "Silva",
				JobTitle:   "cook",
				Status:     employee.StatusActive,
				Schedule:   schedule.Default(),
			}, nil
		},
	}
	ledger := &fakeLedger{
		row: &attendance.Attendance{
			EmployeeID:  "123456",
			WorkDate:    time.Date(2026, time.January, 7, 0, 0, 0, 0, time.Local),
			CheckInTime: in,
		},
	}
	sheets := &fakeSheets{
		overtime: timesheet.OvertimeResponse{HoursToday: 3, HoursThisWeek: 19},
	}
	paid := "2026-01-02"
	cycles := &fakeCycles{
		summary: payroll.SummaryResponse{EmployeeID: "123456", HoursThisPeriod: 19, LastPaidDate: &paid},
	}

	svc := NewService(employees, ledger, sheets, &fakeRates{rate: decimal.NewFromInt(12)}, cycles).(*service)
	svc.now = func() time.Time { return wednesday }

	resp, err := svc.GetMe(context.Background(), "123456")
	assert.NoError(t, err)
	assert.Equal(t, "Ana Silva", resp.Name)
	assert.True(t, resp.ScheduledToday)
	assert.True(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)
	assert.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	assert.Equal(t, "12.00", resp.HourlyRate)
	assert.InDelta(t, 19, resp.Payroll.HoursThisPeriod, 1e-9)
}

func TestService_GetMe_NoSessionToday(t *testing.T) {
	employees := &fakeEmployees{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{
				EmployeeID: id,
				Status:     employee.StatusActive,
				Schedule:   schedule.Default(),
			}, nil
		},
	}

	svc := NewService(employees, &fakeLedger{}, &fakeSheets{}, &fakeRates{rate: decimal.NewFromInt(15)}, &fakeCycles{}).(*service)
	svc.now = func() time.Time { return time.Date(2026, time.January, 7, 8, 0, 0, 0, time.Local) }

	resp, err := svc.GetMe(context.Background(), "123456")
	assert.NoError(t, err)
	assert.False(t, resp.CheckedIn)
	assert.Nil(t, resp.CheckInTime)
}

func TestService_GetMe_UnknownEmployee(t *testing.T) {
	employees := &fakeEmployees{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(employees, &fakeLedger{}, &fakeSheets{}, &fakeRates{}, &fakeCycles{})

	_, err := svc.GetMe(context.Background(), "999999")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
