package balanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Days must be at least 1",
		http.StatusBadRequest,
	)
	ErrBalanceInconsistency = apperror.New(
		apperror.CodeBalanceInconsistency,
		"leave balance changed and no longer covers this request",
		http.StatusConflict,
	)
)

// Inconsistency reports that a balance could not absorb days at mutation time.
func Inconsistency(remaining, requested int) error {
	return ErrBalanceInconsistency.WithDetails(map[string]any{
		"remaining": remaining,
		"requested": requested,
	})
}
