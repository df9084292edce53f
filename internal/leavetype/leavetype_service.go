package leavetype

import (
	"context"
	"encoding/json"
	"time"

	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKeyAll = "leave_types:all"
	cacheTTL    = time.Hour
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave type requested", zap.String("name", req.Name))

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	lt := &LeaveType{
		ID:               uuid.New(),
		Name:             req.Name,
		MaxDays:          req.MaxDays,
		CanCarryForward:  req.CanCarryForward,
		RequiresApproval: requiresApproval,
		Description:      req.Description,
	}
	if err := s.repo.Create(ctx, lt); err != nil {
		log.Warn("create leave type failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx)
	log.Info("create leave type success", zap.String("leave_type_id", lt.ID.String()))
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CacheKeyAll).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKeyAll, func() (interface{}, error) {
		items, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(items)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, CacheKeyAll, data, cacheTTL).Err(); err != nil {
					s.logger.Warn("leave type cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get leave types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, err
	}

	lt.Name = req.Name
	lt.MaxDays = req.MaxDays
	lt.CanCarryForward = req.CanCarryForward
	lt.RequiresApproval = req.RequiresApproval
	lt.Description = req.Description

	if err := s.repo.Update(ctx, lt); err != nil {
		log.Warn("update leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx)
	log.Info("update leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKeyAll).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache", zap.String("key", CacheKeyAll), zap.Error(err))
	}
}
