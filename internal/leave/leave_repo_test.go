package leave

import (
	"context"
	"testing"
	"time"

	employeeerrors "go-leave/internal/employee/errors"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestRepository_TransitionStatus(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	id := uuid.NewString()
	approver := uuid.NewString()
	now := time.Now().UTC()

	t.Run("swapped", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "leave_requests" SET .*"status"=.* WHERE .*id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.TransitionStatus(context.Background(), StatusTransition{
			ID:         id,
			From:       StatusPending,
			To:         StatusApproved,
			ApprovedBy: &approver,
			DecidedAt:  &now,
		})

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lost the race", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "leave_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.TransitionStatus(context.Background(), StatusTransition{
			ID:   id,
			From: StatusPending,
			To:   StatusRejected,
		})

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("clearing the decision", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "leave_requests" SET "approved_by"=.*"decided_at"=.*"status"=`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.TransitionStatus(context.Background(), StatusTransition{
			ID:            id,
			From:          StatusApproved,
			To:            StatusCancelled,
			ClearDecision: true,
		})

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindForApprover(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	t.Run("empty scope skips the query", func(t *testing.T) {
		items, err := repo.FindForApprover(context.Background(), ApprovalQuery{Status: StatusPending})

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("direct reports", func(t *testing.T) {
		reportID := uuid.NewString()
		approverID := uuid.NewString()

		mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE status = \$1 AND employee_id IN \(\$2\) AND employee_id <> \$3 AND "leave_requests"."deleted_at" IS NULL ORDER BY start_date ASC`).
			WithArgs(StatusPending, reportID, approverID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).
				AddRow(uuid.NewString(), reportID, StatusPending))

		items, err := repo.FindForApprover(context.Background(), ApprovalQuery{
			EmployeeIDs:       []string{reportID},
			ExcludeEmployeeID: approverID,
			Status:            StatusPending,
		})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmployee(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	employeeID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE employee_id = \$1 AND status = \$2 AND "leave_requests"."deleted_at" IS NULL ORDER BY created_at DESC`).
		WithArgs(employeeID, StatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).
			AddRow(uuid.NewString(), employeeID, StatusApproved))

	items, err := repo.FindByEmployee(context.Background(), employeeID, ListFilter{Status: StatusApproved})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasOverlappingPeriod(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	employeeID := uuid.NewString()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "leave_requests" WHERE employee_id = \$1 AND status NOT IN \(\$2,\$3\) .*NOT \(end_date < \$4 OR start_date > \$5\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	overlap, err := repo.HasOverlappingPeriod(context.Background(), employeeID, start, end, nil)

	assert.NoError(t, err)
	assert.True(t, overlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockEmployee(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	employeeID := uuid.NewString()

	t.Run("locks the employee row", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .*id.* FROM "employees" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(employeeID))

		assert.NoError(t, repo.LockEmployee(context.Background(), employeeID))
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		mock.ExpectQuery(`FROM "employees" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := repo.LockEmployee(context.Background(), employeeID)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	id := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDForUpdate(context.Background(), id)

	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SoftDeletePending(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)
	id := uuid.NewString()

	mock.ExpectExec(`UPDATE "leave_requests" SET "deleted_at"=\$1 WHERE .*id = \$2 AND status = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.SoftDeletePending(context.Background(), id)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
