package accrual_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/accrual"
	"go-leave/internal/accrual/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := accrual.NewScheduler(mock.NewMockService(ctrl), "not a schedule", time.UTC)
	assert.Error(t, err)

	s, err := accrual.NewScheduler(mock.NewMockService(ctrl), "", nil)
	assert.NoError(t, err)
	assert.NotNil(t, s)
}

func TestScheduler_RunAt(t *testing.T) {
	ctx := context.Background()

	t.Run("january closes previous year first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		s, err := accrual.NewScheduler(svc, accrual.DefaultSchedule, time.UTC)
		assert.NoError(t, err)

		at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		gomock.InOrder(
			svc.EXPECT().CarryForward(ctx, 2025).Return(accrual.Result{Period: "2025-CF"}, nil),
			svc.EXPECT().RunMonthly(ctx, at).Return(accrual.Result{Period: "2026-01"}, nil),
		)

		assert.NoError(t, s.RunAt(ctx, at))
	})

	t.Run("other months only accrue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		s, err := accrual.NewScheduler(svc, accrual.DefaultSchedule, time.UTC)
		assert.NoError(t, err)

		at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().RunMonthly(ctx, at).Return(accrual.Result{Period: "2026-03"}, nil)

		assert.NoError(t, s.RunAt(ctx, at))
	})

	t.Run("negative carry forward failure stops the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		s, err := accrual.NewScheduler(svc, accrual.DefaultSchedule, time.UTC)
		assert.NoError(t, err)

		svc.EXPECT().CarryForward(ctx, 2025).Return(accrual.Result{}, errors.New("db down"))

		assert.Error(t, s.RunAt(ctx, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}
