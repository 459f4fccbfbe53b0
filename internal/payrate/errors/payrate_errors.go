package payrateerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrNegativeRate = apperror.New(
		apperror.CodeInvalidInput,
		"Hourly rate cannot be negative",
		http.StatusBadRequest,
	)
	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Role is required",
		http.StatusBadRequest,
	)
)
