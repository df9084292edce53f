package balance_test

import (
	"context"
	"testing"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/balance/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := balance.NewService(repo)
	employeeID := uuid.New()

	t.Run("maps rows", func(t *testing.T) {
		repo.EXPECT().FindAllByEmployee(ctx, employeeID.String()).Return([]balance.LeaveBalance{
			{ID: uuid.New(), EmployeeID: employeeID, LeaveTypeID: uuid.New(), RemainingDays: 21},
		}, nil)

		resp, err := svc.ListForEmployee(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 21, resp[0].RemainingDays)
		assert.Equal(t, employeeID.String(), resp[0].EmployeeID)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		_, err := svc.ListForEmployee(ctx, "nope")
		assert.ErrorIs(t, err, balanceerrors.ErrInvalidEmployeeID)
	})
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := balance.NewService(repo)
	employeeID, leaveTypeID := uuid.New(), uuid.New()

	t.Run("upserts and returns stored row", func(t *testing.T) {
		req := balance.ResetBalanceRequest{
			EmployeeID:      employeeID.String(),
			LeaveTypeID:     leaveTypeID.String(),
			RemainingDays:   21,
			TotalEarnedDays: 21,
		}

		repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *balance.LeaveBalance) error {
			assert.Equal(t, employeeID, b.EmployeeID)
			assert.Equal(t, 21, b.RemainingDays)
			return nil
		})
		repo.EXPECT().FindByEmployeeAndType(ctx, employeeID.String(), leaveTypeID.String()).
			Return(&balance.LeaveBalance{ID: uuid.New(), EmployeeID: employeeID, LeaveTypeID: leaveTypeID, RemainingDays: 21}, nil)

		resp, err := svc.Reset(ctx, uuid.NewString(), req)

		assert.NoError(t, err)
		assert.Equal(t, 21, resp.RemainingDays)
	})

	t.Run("negative invalid leave type", func(t *testing.T) {
		_, err := svc.Reset(ctx, uuid.NewString(), balance.ResetBalanceRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: "bad",
		})
		assert.ErrorIs(t, err, balanceerrors.ErrInvalidLeaveTypeID)
	})
}
