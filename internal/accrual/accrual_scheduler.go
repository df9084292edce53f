package accrual

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultSchedule = "0 0 1 * *"

// Scheduler runs the accrual jobs on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service Service
	now     func() time.Time
	loc     *time.Location
	logger  *zap.Logger
}

func NewScheduler(service Service, schedule string, loc *time.Location, logger ...*zap.Logger) (*Scheduler, error) {
	l := zap.L().Named("accrual.scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accrual.scheduler")
	}
	if loc == nil {
		loc = time.UTC
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		service: service,
		now:     time.Now,
		loc:     loc,
		logger:  l,
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("scheduled accrual failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("accrual scheduler started", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("accrual scheduler stop timed out")
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	return s.RunAt(ctx, s.now())
}

// RunAt performs the accrual for the month containing at. In January the
// previous year is closed first.
func (s *Scheduler) RunAt(ctx context.Context, at time.Time) error {
	now := at.In(s.loc)

	if now.Month() == time.January {
		res, err := s.service.CarryForward(ctx, now.Year()-1)
		if err != nil {
			return err
		}
		s.logger.Info("carry forward applied", zap.String("period", res.Period), zap.Int("applied", res.Credited))
	}

	res, err := s.service.RunMonthly(ctx, now)
	if err != nil {
		return err
	}
	s.logger.Info("monthly accrual applied", zap.String("period", res.Period), zap.Int("credited", res.Credited))
	return nil
}
