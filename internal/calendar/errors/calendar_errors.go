package calendarerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday not found",
		http.StatusNotFound,
	)
	ErrHolidayDateExists = apperror.New(
		apperror.CodeConflict,
		"A holiday already exists on this date",
		http.StatusConflict,
	)
	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid holiday ID",
		http.StatusBadRequest,
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
)
