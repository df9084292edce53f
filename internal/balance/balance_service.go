package balance

import (
	"context"
	"time"

	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]BalanceResponse, error)
	Reset(ctx context.Context, actorID string, req ResetBalanceRequest) (BalanceResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, balanceerrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list balances failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(items), nil
}

// Reset overwrites the counters of one (employee, leave type) row, creating it when absent.
func (s *service) Reset(ctx context.Context, actorID string, req ResetBalanceRequest) (BalanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, balanceerrors.ErrInvalidEmployeeID
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return BalanceResponse{}, balanceerrors.ErrInvalidLeaveTypeID
	}

	b := &LeaveBalance{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		LeaveTypeID:        leaveTypeID,
		RemainingDays:      req.RemainingDays,
		CarriedForwardDays: req.CarriedForwardDays,
		TotalEarnedDays:    req.TotalEarnedDays,
		LastUpdated:        s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, b); err != nil {
		log.Error("reset balance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return BalanceResponse{}, err
	}

	stored, err := s.repo.FindByEmployeeAndType(ctx, req.EmployeeID, req.LeaveTypeID)
	if err != nil {
		return BalanceResponse{}, err
	}

	log.Info("balance reset",
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("remaining_days", stored.RemainingDays),
	)
	return mapToResponse(*stored), nil
}
