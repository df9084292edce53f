package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// StorageUnavailable wraps a persistence failure that is not a business rule violation.
func StorageUnavailable(err error) *AppError {
	return Wrap(err, CodeStorageUnavailable, "storage is unavailable", http.StatusServiceUnavailable)
}

func RequiredField(field string) *AppError {
	return New(CodeValidationError, field+" is required", http.StatusBadRequest).
		WithDetails(map[string]any{"field": field})
}

func InvalidField(field string) *AppError {
	return New(CodeValidationError, field+" is invalid", http.StatusBadRequest).
		WithDetails(map[string]any{"field": field})
}
