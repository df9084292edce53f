package auth

import (
	"context"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/auth/token"
	"go-leave/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	tokens       *token.Manager
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login unknown email", zap.Error(err))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", user.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountDisabled
	}

	return s.issueFor(ctx, user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountDisabled
	}

	return s.issueFor(ctx, user)
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	emp, err := s.employeeRepo.FindByID(ctx, u.EmployeeID.String())
	if err != nil {
		return nil, err
	}

	resp := toResponse(u, emp)
	return &resp, nil
}

// issueFor reads the role from the directory so promotions apply at the next login or refresh.
func (s *service) issueFor(ctx context.Context, user *User) (string, string, AuthResponse, error) {
	emp, err := s.employeeRepo.FindByID(ctx, user.EmployeeID.String())
	if err != nil {
		s.logger.Error("auth employee lookup failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return "", "", AuthResponse{}, err
	}

	access, refresh, err := s.tokens.IssuePair(user.ID.String(), emp.ID.String(), emp.Role)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return access, refresh, toResponse(user, emp), nil
}

func toResponse(u *User, emp *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		EmployeeID: emp.ID.String(),
		Email:      u.Email,
		Name:       emp.FullName,
		Role:       emp.Role,
	}
}
