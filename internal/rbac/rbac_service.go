package rbac

import (
	"context"
	"sync"
	"time"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const defaultPolicyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(employeeID string) ([]PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loadedAt time.Time
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		ttl:      defaultPolicyTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	for _, pair := range RoleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(pair[0], pair[1]); err != nil {
			return err
		}
	}

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.Role); err != nil {
			return err
		}
	}

	stored, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, rp := range append(append([]RolePermissionRow{}, DefaultPermissions...), stored...) {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("stored_permissions", len(stored)),
	)
	return nil
}

func (s *service) ensureFresh() error {
	if !s.loadedAt.IsZero() && s.now().Sub(s.loadedAt) < s.ttl {
		return nil
	}
	return s.loadPolicyUnlocked(context.Background())
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		s.logger.Error("rbac policy reload failed", zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(employeeID string) ([]PermissionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(employeeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(perms))
	result := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		key := p[1] + ":" + p[2]
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return result, nil
}
