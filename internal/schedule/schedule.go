package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go-timeclock/internal/shared/apperror"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Day is one weekday's shift window.
type Day struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM, 24h
	End     string `json:"end"`   // HH:MM, 24h
}

// Weekly is an employee's full weekly schedule. All seven entries are always
// present; the zero value is not valid, use Default().
type Weekly struct {
	Monday    Day `json:"monday"`
	Tuesday   Day `json:"tuesday"`
	Wednesday Day `json:"wednesday"`
	Thursday  Day `json:"thursday"`
	Friday    Day `json:"friday"`
	Saturday  Day `json:"saturday"`
	Sunday    Day `json:"sunday"`
}

// Default returns the standard schedule: Mon-Fri 09:00-17:00, weekend off.
func Default() Weekly {
	workday := Day{Enabled: true, Start: "09:00", End: "17:00"}
	dayOff := Day{Enabled: false, Start: "09:00", End: "17:00"}
	return Weekly{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  dayOff,
		Sunday:    dayOff,
	}
}

// On returns the entry for the given weekday.
func (w Weekly) On(d time.Weekday) Day {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// EnabledOn reports whether the employee is scheduled to work on that weekday.
func (w Weekly) EnabledOn(d time.Weekday) bool {
	return w.On(d).Enabled
}

// Validate checks every day's time-of-day format.
func (w Weekly) Validate() error {
	days := map[string]Day{
		"monday": w.Monday, "tuesday": w.Tuesday, "wednesday": w.Wednesday,
		"thursday": w.Thursday, "friday": w.Friday, "saturday": w.Saturday,
		"sunday": w.Sunday,
	}
	for name, d := range days {
		if !timeOfDayRe.MatchString(d.Start) || !timeOfDayRe.MatchString(d.End) {
			return apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("Invalid time of day for %s, expected HH:MM", name),
				http.StatusBadRequest,
			)
		}
	}
	return nil
}

// Value implements driver.Valuer, storing the schedule as a JSON column.
func (w Weekly) Value() (driver.Value, error) {
	return json.Marshal(w)
}

// Scan implements sql.Scanner. Corrupt schedule data is a distinct validation
// error so callers can tell "no schedule configured" from bad rows, instead of
// silently substituting the default.
func (w *Weekly) Scan(src any) error {
	if src == nil {
		*w = Default()
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Unsupported schedule column type %T", src),
			http.StatusUnprocessableEntity,
		)
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		*w = Default()
		return nil
	}

	var parsed Weekly
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Corrupt schedule data",
			http.StatusUnprocessableEntity,
		)
	}
	*w = parsed
	return nil
}
