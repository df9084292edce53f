package leave_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	balanceerrors "go-leave/internal/balance/errors"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func date(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

type leaveServiceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   leave.Service
	store     *memStore
	balances  *fakeBalanceRepo
	notifier  *fakeNotifier
	authority *fakeAuthority

	employeeID  uuid.UUID
	managerID   uuid.UUID
	hrID        uuid.UUID
	leaveTypeID uuid.UUID
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	d := &leaveServiceDeps{
		sqlMock:     sqlMock,
		store:       newMemStore(),
		notifier:    &fakeNotifier{},
		employeeID:  uuid.New(),
		managerID:   uuid.New(),
		hrID:        uuid.New(),
		leaveTypeID: uuid.New(),
	}
	d.balances = &fakeBalanceRepo{s: d.store}
	d.authority = &fakeAuthority{
		reports: map[string][]string{d.managerID.String(): {d.employeeID.String()}},
		all:     map[string]bool{d.hrID.String(): true},
	}
	d.service = leave.NewService(db, &fakeLeaveRepo{s: d.store}, d.balances, d.authority, d.notifier,
		leave.WithClock(func() time.Time { return fixedNow }),
	)
	return d
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func (d *leaveServiceDeps) seedPending(start, end string) leave.LeaveRequest {
	s, e := date(start), date(end)
	l := leave.LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  d.employeeID,
		LeaveTypeID: d.leaveTypeID,
		StartDate:   s,
		EndDate:     e,
		TotalDays:   leave.Duration(s, e),
		Status:      leave.StatusPending,
		CreatedAt:   fixedNow,
	}
	d.store.putLeave(l)
	return l
}

func detailsOf(t *testing.T, err error) map[string]any {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	details, _ := appErr.Details.(map[string]any)
	return details
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates pending request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-12",
			Reason:      "Family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Nil(t, resp.ApprovedBy)
		assert.Equal(t, 21, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.Equal(t, 1, d.notifier.count(leave.EventLeaveCreated))
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("start today is allowed", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 1)
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-02",
			EndDate:     "2026-03-02",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
	})

	t.Run("negative insufficient balance creates nothing", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 5)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-04-01",
			EndDate:     "2026-04-26",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.Equal(t, map[string]any{"remaining": 5, "requested": 26}, detailsOf(t, err))
		assert.Empty(t, d.store.leaves)
		assert.Empty(t, d.notifier.events)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative past start date", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-03",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrPastDate)
	})

	t.Run("negative missing end date", func(t *testing.T) {
		d := setupLeaveServiceTest(t)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrMissingField)
		assert.Equal(t, "end_date", detailsOf(t, err)["field"])
	})

	t.Run("negative missing leave type", func(t *testing.T) {
		d := setupLeaveServiceTest(t)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			StartDate: "2026-03-10",
			EndDate:   "2026-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrMissingField)
		assert.Equal(t, "leave_type_id", detailsOf(t, err)["field"])
	})

	t.Run("negative bad date format", func(t *testing.T) {
		d := setupLeaveServiceTest(t)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "10/03/2026",
			EndDate:     "2026-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative no balance record", func(t *testing.T) {
		d := setupLeaveServiceTest(t)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNoBalanceRecord)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		d.store.overlap = true
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee row is locked before the overlap check", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		expectTx(t, d.sqlMock, true)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-11",
		})

		assert.NoError(t, err)
		emp := d.employeeID.String()
		assert.Equal(t, []string{"lock:" + emp, "overlap:" + emp}, d.store.calls)
	})

	t.Run("negative employee row missing", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		d.store.lockErr = employeeerrors.ErrEmployeeNotFound
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-11",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NotContains(t, d.store.calls, "overlap:"+d.employeeID.String())
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("notification failure does not fail create", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		d.notifier.err = errors.New("outbox down")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Create(ctx, d.employeeID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-10",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("success deducts exactly once", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Approve(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{ManagerNotes: "enjoy"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, d.managerID.String(), *resp.ApprovedBy)
		assert.NotNil(t, resp.DecidedAt)
		assert.Equal(t, 18, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.Equal(t, 1, d.notifier.count(leave.EventLeaveApproved))

		expectTx(t, d.sqlMock, false)
		_, err = d.service.Approve(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
		assert.Equal(t, leave.StatusApproved, detailsOf(t, err)["status"])
		assert.Equal(t, 18, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("hr can approve anyone", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 10)
		l := d.seedPending("2026-03-10", "2026-03-10")
		expectTx(t, d.sqlMock, true)

		_, err := d.service.Approve(ctx, d.hrID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 9, d.store.remaining(d.employeeID, d.leaveTypeID))
	})

	t.Run("negative self approval", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Approve(ctx, d.employeeID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrNoApprovalAuthority)
		assert.Equal(t, 21, d.store.remaining(d.employeeID, d.leaveTypeID))
	})

	t.Run("negative approver without authority", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Approve(ctx, uuid.NewString(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrNoApprovalAuthority)
		stored, _ := d.store.getLeave(l.ID)
		assert.Equal(t, leave.StatusPending, stored.Status)
	})

	t.Run("negative balance shrank since submission", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 2)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Approve(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, balanceerrors.ErrBalanceInconsistency)
		assert.Equal(t, map[string]any{"remaining": 2, "requested": 3}, detailsOf(t, err))
		stored, _ := d.store.getLeave(l.ID)
		assert.Equal(t, leave.StatusPending, stored.Status)
		assert.Nil(t, stored.ApprovedBy)
		assert.Equal(t, 2, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.Zero(t, d.notifier.count(leave.EventLeaveApproved))
	})

	t.Run("negative balance row removed", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Approve(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, balanceerrors.ErrBalanceInconsistency)
	})

	t.Run("negative not found", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Approve(ctx, d.managerID.String(), uuid.NewString(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		d := setupLeaveServiceTest(t)

		_, err := d.service.Approve(ctx, d.managerID.String(), "nope", leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})
}

func TestLeaveService_ConcurrentApprovals(t *testing.T) {
	ctx := context.Background()
	d := setupLeaveServiceTest(t)
	d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
	l := d.seedPending("2026-03-10", "2026-03-12")

	d.sqlMock.MatchExpectationsInOrder(false)
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.sqlMock.ExpectRollback()

	approvers := []string{d.managerID.String(), d.hrID.String()}
	errs := make([]error, len(approvers))

	var wg sync.WaitGroup
	for i, approverID := range approvers {
		wg.Add(1)
		go func(i int, approverID string) {
			defer wg.Done()
			_, errs[i] = d.service.Approve(ctx, approverID, l.ID.String(), leave.DecisionRequest{})
		}(i, approverID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 18, d.store.remaining(d.employeeID, d.leaveTypeID))
	assert.Equal(t, 1, d.notifier.count(leave.EventLeaveApproved))
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("success leaves balance untouched", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Reject(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{ManagerNotes: "busy week"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "busy week", *resp.ManagerNotes)
		assert.Equal(t, 21, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.Equal(t, 1, d.notifier.count(leave.EventLeaveRejected))
	})

	t.Run("negative already rejected", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		l.Status = leave.StatusRejected
		d.store.putLeave(l)
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Reject(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Cancel(ctx, d.employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Equal(t, 21, d.store.remaining(d.employeeID, d.leaveTypeID))
		assert.Equal(t, 1, d.notifier.count(leave.EventLeaveCancelled))
	})

	t.Run("approved request restores days", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")

		expectTx(t, d.sqlMock, true)
		_, err := d.service.Approve(ctx, d.managerID.String(), l.ID.String(), leave.DecisionRequest{})
		assert.NoError(t, err)
		assert.Equal(t, 18, d.store.remaining(d.employeeID, d.leaveTypeID))

		expectTx(t, d.sqlMock, true)
		resp, err := d.service.Cancel(ctx, d.employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Nil(t, resp.ApprovedBy)
		assert.Equal(t, 21, d.store.remaining(d.employeeID, d.leaveTypeID))
		stored, _ := d.store.getLeave(l.ID)
		assert.Nil(t, stored.ApprovedBy)
	})

	t.Run("negative started today", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-02", "2026-03-04")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Cancel(ctx, d.employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCancelWindowClosed)
	})

	t.Run("negative not owner", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Cancel(ctx, d.managerID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
	})

	t.Run("negative already cancelled", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		l.Status = leave.StatusCancelled
		d.store.putLeave(l)
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Cancel(ctx, d.employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
	})
}

func TestLeaveService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request is revalidated", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Update(ctx, d.employeeID.String(), l.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-16",
			EndDate:     "2026-03-20",
			Reason:      "moved",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, leave.StatusPending, resp.Status)
		stored, _ := d.store.getLeave(l.ID)
		assert.Equal(t, "moved", stored.Reason)
		assert.Empty(t, d.notifier.events)
		emp := d.employeeID.String()
		assert.Equal(t, []string{"lock:" + emp, "overlap:" + emp}, d.store.calls)
	})

	t.Run("edit skips past date rule", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		resp, err := d.service.Update(ctx, d.employeeID.String(), l.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-02-27",
			EndDate:     "2026-03-03",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
	})

	t.Run("negative approved request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		l.Status = leave.StatusApproved
		d.store.putLeave(l)
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Update(ctx, d.employeeID.String(), l.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-16",
			EndDate:     "2026-03-20",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
		stored, _ := d.store.getLeave(l.ID)
		assert.Equal(t, 3, stored.TotalDays)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 3)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Update(ctx, d.employeeID.String(), l.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-20",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("negative end before start", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		d.store.putBalance(d.employeeID, d.leaveTypeID, 21)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, false)

		_, err := d.service.Update(ctx, d.employeeID.String(), l.ID.String(), leave.UpdateLeaveRequest{
			LeaveTypeID: d.leaveTypeID.String(),
			StartDate:   "2026-03-12",
			EndDate:     "2026-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		expectTx(t, d.sqlMock, true)

		err := d.service.Delete(ctx, d.employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		_, ok := d.store.getLeave(l.ID)
		assert.False(t, ok)
	})

	t.Run("negative approved request", func(t *testing.T) {
		d := setupLeaveServiceTest(t)
		l := d.seedPending("2026-03-10", "2026-03-12")
		l.Status = leave.StatusApproved
		d.store.putLeave(l)
		expectTx(t, d.sqlMock, false)

		err := d.service.Delete(ctx, d.employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrIllegalTransition)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	d := setupLeaveServiceTest(t)
	l := d.seedPending("2026-03-10", "2026-03-12")

	resp, err := d.service.GetByID(ctx, d.employeeID.String(), l.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, l.ID.String(), resp.ID)

	_, err = d.service.GetByID(ctx, d.managerID.String(), l.ID.String())
	assert.NoError(t, err)

	_, err = d.service.GetByID(ctx, uuid.NewString(), l.ID.String())
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestLeaveService_ListForApprover(t *testing.T) {
	ctx := context.Background()
	d := setupLeaveServiceTest(t)

	later := d.seedPending("2026-04-10", "2026-04-11")
	sooner := d.seedPending("2026-03-20", "2026-03-21")
	decided := d.seedPending("2026-03-15", "2026-03-15")
	decided.Status = leave.StatusApproved
	d.store.putLeave(decided)

	own := leave.LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  d.managerID,
		LeaveTypeID: d.leaveTypeID,
		StartDate:   date("2026-03-05"),
		EndDate:     date("2026-03-05"),
		TotalDays:   1,
		Status:      leave.StatusPending,
	}
	d.store.putLeave(own)

	t.Run("defaults to pending and sorts by start", func(t *testing.T) {
		resp, err := d.service.ListForApprover(ctx, d.managerID.String(), "")

		assert.NoError(t, err)
		if assert.Len(t, resp, 2) {
			assert.Equal(t, sooner.ID.String(), resp[0].ID)
			assert.Equal(t, later.ID.String(), resp[1].ID)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := d.service.ListForApprover(ctx, d.managerID.String(), leave.StatusApproved)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("hr sees everyone except self", func(t *testing.T) {
		resp, err := d.service.ListForApprover(ctx, d.hrID.String(), leave.StatusPending)

		assert.NoError(t, err)
		assert.Len(t, resp, 3)
	})

	t.Run("negative unknown status", func(t *testing.T) {
		_, err := d.service.ListForApprover(ctx, d.managerID.String(), "DONE")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
	})
}

func TestLeaveService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	d := setupLeaveServiceTest(t)
	d.seedPending("2026-03-10", "2026-03-12")
	rejected := d.seedPending("2026-04-10", "2026-04-12")
	rejected.Status = leave.StatusRejected
	d.store.putLeave(rejected)

	resp, err := d.service.ListForEmployee(ctx, d.employeeID.String(), leave.ListFilterQuery{})
	assert.NoError(t, err)
	assert.Len(t, resp, 2)

	resp, err = d.service.ListForEmployee(ctx, d.employeeID.String(), leave.ListFilterQuery{Status: leave.StatusRejected})
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = d.service.ListForEmployee(ctx, d.employeeID.String(), leave.ListFilterQuery{From: "2026-05-01", To: "2026-04-01"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
}
