package authority

import (
	"context"
	"errors"

	"go-leave/internal/domain"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Enforcer answers capability checks, usually the casbin-backed rbac service.
type Enforcer interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// Provider resolves approval authority from the reporting line and the
// leave:approve_any capability.
type Provider struct {
	directory employee.Repository
	enforcer  Enforcer
	logger    *zap.Logger
}

func NewProvider(directory employee.Repository, enforcer Enforcer, logger ...*zap.Logger) *Provider {
	l := zap.L().Named("authority.provider")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authority.provider")
	}
	return &Provider{directory: directory, enforcer: enforcer, logger: l}
}

// CanApprove reports whether approverID may decide on employeeID's requests.
// Nobody approves their own leave.
func (p *Provider) CanApprove(ctx context.Context, approverID, employeeID string) (bool, error) {
	if approverID == "" || approverID == employeeID {
		return false, nil
	}

	canApprove, err := p.can(approverID, domain.ActionApprove)
	if err != nil || !canApprove {
		return false, err
	}

	approveAny, err := p.can(approverID, domain.ActionApproveAny)
	if err != nil {
		return false, err
	}
	if approveAny {
		return true, nil
	}

	emp, err := p.directory.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return false, nil
		}
		contextutil.GetLogger(ctx, p.logger).Error("authority lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return false, err
	}

	return emp.ManagerID != nil && emp.ManagerID.String() == approverID, nil
}

func (p *Provider) ApproverScope(ctx context.Context, approverID string) (domain.ApproverScope, error) {
	canApprove, err := p.can(approverID, domain.ActionApprove)
	if err != nil || !canApprove {
		return domain.ApproverScope{}, err
	}

	approveAny, err := p.can(approverID, domain.ActionApproveAny)
	if err != nil {
		return domain.ApproverScope{}, err
	}
	if approveAny {
		return domain.ApproverScope{All: true}, nil
	}

	reports, err := p.directory.FindDirectReports(ctx, approverID)
	if err != nil {
		return domain.ApproverScope{}, err
	}
	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID.String())
	}
	return domain.ApproverScope{EmployeeIDs: ids}, nil
}

func (p *Provider) can(employeeID, action string) (bool, error) {
	return p.enforcer.Enforce(domain.EnforceRequest{
		EmployeeID: employeeID,
		Resource:   domain.ResourceLeave,
		Action:     action,
	})
}
