package accrual

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-leave/internal/balance"
	"go-leave/internal/leavetype"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaveTypeLookup lists the catalogue entries that drive entitlement.
type LeaveTypeLookup interface {
	FindAll(ctx context.Context) ([]leavetype.LeaveType, error)
}

type Result struct {
	Period    string `json:"period"`
	Processed int    `json:"processed"`
	Credited  int    `json:"credited"`
	Skipped   int    `json:"skipped"`
}

//go:generate mockgen -source=accrual_service.go -destination=mock/accrual_service_mock.go -package=mock
type Service interface {
	RunMonthly(ctx context.Context, period time.Time) (Result, error)
	CarryForward(ctx context.Context, year int) (Result, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	balances   balance.Repository
	leaveTypes LeaveTypeLookup
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, balances balance.Repository, leaveTypes LeaveTypeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("accrual.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accrual.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		balances:   balances,
		leaveTypes: leaveTypes,
		now:        time.Now,
		logger:     l,
	}
}

// MonthlyEntitlement spreads maxDays over twelve months so the credits add up to maxDays exactly.
func MonthlyEntitlement(maxDays, month int) int {
	if maxDays <= 0 || month < 1 || month > 12 {
		return 0
	}
	return maxDays*month/12 - maxDays*(month-1)/12
}

func MonthlyPeriod(t time.Time) string {
	return t.Format("2006-01")
}

func CarryForwardPeriod(year int) string {
	return fmt.Sprintf("%04d-CF", year)
}

// RunMonthly credits every balance with its share for the period's month.
// Rows already credited for the period are skipped.
func (s *service) RunMonthly(ctx context.Context, period time.Time) (Result, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	result := Result{Period: MonthlyPeriod(period)}

	types, balances, err := s.load(ctx)
	if err != nil {
		return result, err
	}

	for _, b := range balances {
		result.Processed++

		lt, ok := types[b.LeaveTypeID]
		if !ok {
			result.Skipped++
			continue
		}
		days := MonthlyEntitlement(lt.MaxDays, int(period.Month()))
		if days == 0 {
			result.Skipped++
			continue
		}

		credited, err := s.credit(ctx, b, result.Period, days)
		if err != nil {
			log.Error("monthly accrual failed",
				zap.String("employee_id", b.EmployeeID.String()),
				zap.String("leave_type_id", b.LeaveTypeID.String()),
				zap.Error(err),
			)
			return result, err
		}
		if credited {
			result.Credited++
		} else {
			result.Skipped++
		}
	}

	log.Info("monthly accrual finished",
		zap.String("period", result.Period),
		zap.Int("processed", result.Processed),
		zap.Int("credited", result.Credited),
	)
	return result, nil
}

// CarryForward closes year: carry-forward types keep up to max_days of what
// remains, every other type starts from zero.
func (s *service) CarryForward(ctx context.Context, year int) (Result, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	result := Result{Period: CarryForwardPeriod(year)}

	types, balances, err := s.load(ctx)
	if err != nil {
		return result, err
	}

	for _, b := range balances {
		result.Processed++

		lt, ok := types[b.LeaveTypeID]
		if !ok {
			result.Skipped++
			continue
		}
		applied, err := s.carry(ctx, b, lt, result.Period)
		if err != nil {
			log.Error("carry forward failed",
				zap.String("employee_id", b.EmployeeID.String()),
				zap.String("leave_type_id", b.LeaveTypeID.String()),
				zap.Error(err),
			)
			return result, err
		}
		if applied {
			result.Credited++
		} else {
			result.Skipped++
		}
	}

	log.Info("carry forward finished",
		zap.String("period", result.Period),
		zap.Int("processed", result.Processed),
		zap.Int("applied", result.Credited),
	)
	return result, nil
}

func (s *service) load(ctx context.Context) (map[uuid.UUID]leavetype.LeaveType, []balance.LeaveBalance, error) {
	items, err := s.leaveTypes.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	types := make(map[uuid.UUID]leavetype.LeaveType, len(items))
	for _, lt := range items {
		types[lt.ID] = lt
	}

	balances, err := s.balances.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return types, balances, nil
}

func (s *service) credit(ctx context.Context, b balance.LeaveBalance, period string, days int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	inserted, err := s.repo.WithTx(tx).CreateIfAbsent(ctx, &LeaveAccrual{
		ID:          uuid.New(),
		EmployeeID:  b.EmployeeID,
		LeaveTypeID: b.LeaveTypeID,
		Period:      period,
		Days:        days,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil || !inserted {
		return false, err
	}

	if err := s.balances.WithTx(tx).Accrue(ctx, b.EmployeeID.String(), b.LeaveTypeID.String(), days); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// carry caps the locked row, not the FindAll snapshot, so approvals committed
// in between are not written back.
func (s *service) carry(ctx context.Context, b balance.LeaveBalance, lt leavetype.LeaveType, period string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	btx := s.balances.WithTx(tx)
	locked, err := btx.LockByEmployeeAndType(ctx, b.EmployeeID.String(), b.LeaveTypeID.String())
	if err != nil {
		return false, err
	}
	carried := 0
	if lt.CanCarryForward {
		carried = min(locked.RemainingDays, lt.MaxDays)
	}

	inserted, err := s.repo.WithTx(tx).CreateIfAbsent(ctx, &LeaveAccrual{
		ID:          uuid.New(),
		EmployeeID:  b.EmployeeID,
		LeaveTypeID: b.LeaveTypeID,
		Period:      period,
		Days:        carried,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil || !inserted {
		return false, err
	}

	locked.RemainingDays = carried
	locked.CarriedForwardDays = carried
	locked.TotalEarnedDays = 0
	if err := btx.Save(ctx, locked); err != nil {
		return false, err
	}
	return true, tx.Commit()
}
