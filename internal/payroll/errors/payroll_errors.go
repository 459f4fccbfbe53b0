package payrollerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNegativeHours = apperror.New(
		apperror.CodeInvalidInput,
		"Worked hours cannot be negative",
		http.StatusBadRequest,
	)
	ErrNoEmployeesSelected = apperror.New(
		apperror.CodeInvalidInput,
		"At least one employee ID is required",
		http.StatusBadRequest,
	)
)
