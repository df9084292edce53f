package calendar

import (
	"context"
	"time"

	calendarerrors "go-leave/internal/calendar/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	WorkingDays(ctx context.Context, start, end time.Time) (int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	d, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return HolidayResponse{}, calendarerrors.ErrInvalidHolidayDate
	}

	h := &Holiday{ID: uuid.New(), Date: d, Name: req.Name}
	if err := s.repo.Create(ctx, h); err != nil {
		log.Warn("create holiday failed", zap.String("date", req.Date), zap.Error(err))
		return HolidayResponse{}, err
	}

	log.Info("create holiday success", zap.String("holiday_id", h.ID.String()), zap.String("date", req.Date))
	return mapToResponse(*h), nil
}

func (s *service) ListYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1000 || year > 9999 {
		return nil, calendarerrors.ErrInvalidYear
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	items, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return calendarerrors.ErrInvalidHolidayID
	}
	return s.repo.Delete(ctx, id)
}

// WorkingDays counts the days in [start, end] that fall on neither a weekend nor a holiday.
func (s *service) WorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, nil
	}

	holidays, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}
	off := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		off[h.Date.Format(dateLayout)] = struct{}{}
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, ok := off[d.Format(dateLayout)]; ok {
			continue
		}
		count++
	}
	return count, nil
}
