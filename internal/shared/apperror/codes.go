package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"

	// Leave workflow
	CodeMissingField         = "MISSING_FIELD"
	CodeInvalidRange         = "INVALID_RANGE"
	CodePastDate             = "PAST_DATE"
	CodeNonPositiveDuration  = "NON_POSITIVE_DURATION"
	CodeNoBalanceRecord      = "NO_BALANCE_RECORD"
	CodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	CodeIllegalTransition    = "ILLEGAL_TRANSITION"
	CodeBalanceInconsistency = "BALANCE_INCONSISTENCY"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)
