package employee

import (
	"context"

	employeeerrors "go-leave/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	ListDirectReports(ctx context.Context, managerID string) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) ListDirectReports(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	emps, err := s.repo.FindDirectReports(ctx, managerID)
	if err != nil {
		s.logger.Error("list direct reports failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}

	resp := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}
