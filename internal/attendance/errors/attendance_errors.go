package attendanceerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Employee has already checked in today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Employee has already checked out today",
		http.StatusConflict,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee has not checked in today",
		http.StatusUnprocessableEntity,
	)
	ErrNotScheduledToday = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not scheduled to work today",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeForbidden,
		"Employee account is suspended",
		http.StatusForbidden,
	)
)
