package calendar

import (
	"context"
	"testing"
	"time"

	calendarerrors "go-leave/internal/calendar/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return db, mock
}

func TestRepository_FindBetween(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "holidays" WHERE date BETWEEN \$1 AND \$2 ORDER BY date ASC`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "name"}).
			AddRow(uuid.NewString(), time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "Christmas"))

	items, err := repo.FindBetween(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM "holidays" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, calendarerrors.ErrHolidayNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapRepositoryError(t *testing.T) {
	err := mapRepositoryError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_holiday_date"})
	assert.ErrorIs(t, err, calendarerrors.ErrHolidayDateExists)

	assert.ErrorIs(t, mapRepositoryError(gorm.ErrRecordNotFound), calendarerrors.ErrHolidayNotFound)
	assert.Nil(t, mapRepositoryError(nil))
}
