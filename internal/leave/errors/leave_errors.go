package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave request ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of PENDING, APPROVED, REJECTED, CANCELLED",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeIllegalTransition,
		"only the requesting employee can change this leave request",
		http.StatusForbidden,
	)
	ErrNoApprovalAuthority = apperror.New(
		apperror.CodeIllegalTransition,
		"approver has no authority over this employee",
		http.StatusForbidden,
	)
	ErrCancelWindowClosed = apperror.New(
		apperror.CodeIllegalTransition,
		"leave that has already started cannot be cancelled",
		http.StatusConflict,
	)
	ErrIllegalTransition = apperror.New(
		apperror.CodeIllegalTransition,
		"transition not allowed from current status",
		http.StatusConflict,
	)
	ErrMissingField = apperror.New(
		apperror.CodeMissingField,
		"required field is missing",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidRange,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodePastDate,
		"start_date must not be in the past",
		http.StatusBadRequest,
	)
	ErrNonPositiveDuration = apperror.New(
		apperror.CodeNonPositiveDuration,
		"leave must last at least one day",
		http.StatusBadRequest,
	)
	ErrNoBalanceRecord = apperror.New(
		apperror.CodeNoBalanceRecord,
		"no leave balance for this leave type",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"date must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

func MissingField(field string) error {
	return ErrMissingField.WithDetails(map[string]any{"field": field})
}

func InvalidRange() error {
	return ErrInvalidRange.WithDetails(map[string]any{"field": "end_date"})
}

func PastDate() error {
	return ErrPastDate.WithDetails(map[string]any{"field": "start_date"})
}

func NonPositiveDuration(requested int) error {
	return ErrNonPositiveDuration.WithDetails(map[string]any{"requested": requested})
}

func NoBalanceRecord(leaveTypeID string) error {
	return ErrNoBalanceRecord.WithDetails(map[string]any{"leave_type_id": leaveTypeID})
}

func InsufficientBalance(remaining, requested int) error {
	return ErrInsufficientBalance.WithDetails(map[string]any{
		"remaining": remaining,
		"requested": requested,
	})
}

func IllegalTransition(status, action string) error {
	return ErrIllegalTransition.WithDetails(map[string]any{
		"status": status,
		"action": action,
	})
}

func InvalidDateFormat(field string) error {
	return ErrInvalidDateFormat.WithDetails(map[string]any{"field": field})
}
