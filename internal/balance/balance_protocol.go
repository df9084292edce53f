package balance

import (
	"context"
	"errors"

	balanceerrors "go-leave/internal/balance/errors"
)

// Sufficient reports whether b can absorb days.
func Sufficient(b *LeaveBalance, days int) bool {
	return b != nil && days >= 1 && days <= b.RemainingDays
}

// Apply decrements b in memory when it covers daysUsed and leaves it untouched otherwise.
func Apply(b *LeaveBalance, daysUsed int) error {
	if daysUsed < 1 {
		return balanceerrors.ErrInvalidDays
	}
	if b == nil {
		return balanceerrors.Inconsistency(0, daysUsed)
	}
	if !Sufficient(b, daysUsed) {
		return balanceerrors.Inconsistency(b.RemainingDays, daysUsed)
	}
	b.RemainingDays -= daysUsed
	return nil
}

// Deduct charges daysUsed against a balance row the caller already locked in the
// same transaction. The UPDATE re-checks remaining_days so a concurrent writer can
// never drive it below zero.
func Deduct(ctx context.Context, repo Repository, b *LeaveBalance, daysUsed int) error {
	before := b.RemainingDays
	if err := Apply(b, daysUsed); err != nil {
		return err
	}

	applied, err := repo.DeductIfSufficient(ctx, b.EmployeeID.String(), b.LeaveTypeID.String(), daysUsed)
	if err != nil {
		b.RemainingDays = before
		return err
	}
	if !applied {
		b.RemainingDays = before
		return balanceerrors.Inconsistency(before, daysUsed)
	}
	return nil
}

// Refund returns days taken by an approved request that was cancelled.
func Refund(ctx context.Context, repo Repository, employeeID, leaveTypeID string, days int) error {
	if days < 1 {
		return balanceerrors.ErrInvalidDays
	}
	err := repo.Restore(ctx, employeeID, leaveTypeID, days)
	if errors.Is(err, balanceerrors.ErrBalanceNotFound) {
		return balanceerrors.Inconsistency(0, days)
	}
	return err
}
