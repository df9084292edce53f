package leave

import (
	"context"
	"errors"
	"time"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	leaveerrors "go-leave/internal/leave/errors"
)

// BalanceLookup is the read side of the balance store used during validation.
type BalanceLookup interface {
	FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*balance.LeaveBalance, error)
}

type ValidationInput struct {
	EmployeeID  string
	LeaveTypeID string
	StartDate   *time.Time
	EndDate     *time.Time
	IsNew       bool
}

// Validator checks a proposed leave period against calendar rules and the
// employee's balance. It never writes.
type Validator struct {
	balances BalanceLookup
	now      func() time.Time
	loc      *time.Location
}

func NewValidator(balances BalanceLookup, now func() time.Time, loc *time.Location) *Validator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{balances: balances, now: now, loc: loc}
}

// Today is the current calendar date in the configured location, as UTC midnight.
func (v *Validator) Today() time.Time {
	return dateOnly(v.now().In(v.loc))
}

// Validate applies the rules in order and returns the inclusive duration in days.
func (v *Validator) Validate(ctx context.Context, in ValidationInput) (int, error) {
	if in.StartDate == nil {
		return 0, leaveerrors.MissingField("start_date")
	}
	if in.EndDate == nil {
		return 0, leaveerrors.MissingField("end_date")
	}

	start, end := dateOnly(*in.StartDate), dateOnly(*in.EndDate)
	if end.Before(start) {
		return 0, leaveerrors.InvalidRange()
	}
	if in.IsNew && start.Before(v.Today()) {
		return 0, leaveerrors.PastDate()
	}

	days := Duration(start, end)
	if days < 1 {
		return 0, leaveerrors.NonPositiveDuration(days)
	}

	b, err := v.balances.FindByEmployeeAndType(ctx, in.EmployeeID, in.LeaveTypeID)
	if err != nil {
		if errors.Is(err, balanceerrors.ErrBalanceNotFound) {
			return 0, leaveerrors.NoBalanceRecord(in.LeaveTypeID)
		}
		return 0, err
	}
	if !balance.Sufficient(b, days) {
		return 0, leaveerrors.InsufficientBalance(b.RemainingDays, days)
	}

	return days, nil
}

// Duration counts calendar days from start to end inclusive.
func Duration(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, leaveerrors.InvalidDateFormat(field)
	}
	return &t, nil
}
