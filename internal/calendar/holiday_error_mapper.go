package calendar

import (
	"errors"
	"strings"

	calendarerrors "go-leave/internal/calendar/errors"
	"go-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return calendarerrors.ErrHolidayNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return calendarerrors.ErrHolidayDateExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_holiday_date") {
		return calendarerrors.ErrHolidayDateExists
	}

	return apperror.StorageUnavailable(err)
}
