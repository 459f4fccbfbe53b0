package employeeerrors

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
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be active or suspended",
		http.StatusBadRequest,
	)
	ErrIDGenerationExhausted = apperror.New(
		apperror.CodeInternalError,
		"Unable to generate a unique employee ID",
		http.StatusInternalServerError,
	)
	ErrEmptyPatch = apperror.New(
		apperror.CodeInvalidInput,
		"No fields supplied to update",
		http.StatusBadRequest,
	)
)
