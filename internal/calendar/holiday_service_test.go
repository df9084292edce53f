package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/calendar"
	calendarerrors "go-leave/internal/calendar/errors"
	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeHolidayRepo struct {
	items   []calendar.Holiday
	findErr error
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h *calendar.Holiday) error {
	for _, existing := range f.items {
		if existing.Date.Equal(h.Date) {
			return calendarerrors.ErrHolidayDateExists
		}
	}
	f.items = append(f.items, *h)
	return nil
}

func (f *fakeHolidayRepo) FindBetween(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []calendar.Holiday
	for _, h := range f.items {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	for i, h := range f.items {
		if h.ID.String() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return calendarerrors.ErrHolidayNotFound
}

func day(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

func TestService_WorkingDays(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHolidayRepo{items: []calendar.Holiday{
		{ID: uuid.New(), Date: day("2026-03-11"), Name: "Founders Day"},
		{ID: uuid.New(), Date: day("2026-03-14"), Name: "Saturday holiday"},
	}}
	svc := calendar.NewService(repo)

	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"monday to friday", "2026-03-02", "2026-03-06", 5},
		{"full week with weekend", "2026-03-02", "2026-03-08", 5},
		{"holiday midweek", "2026-03-09", "2026-03-13", 4},
		{"holiday on weekend counts once", "2026-03-09", "2026-03-15", 4},
		{"weekend only", "2026-03-07", "2026-03-08", 0},
		{"reversed range", "2026-03-08", "2026-03-02", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.WorkingDays(ctx, day(tt.start), day(tt.end))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("negative storage failure", func(t *testing.T) {
		broken := calendar.NewService(&fakeHolidayRepo{findErr: apperror.StorageUnavailable(errors.New("down"))})

		_, err := broken.WorkingDays(ctx, day("2026-03-02"), day("2026-03-06"))

		assert.True(t, apperror.HasCode(err, apperror.CodeStorageUnavailable))
	})
}

func TestService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHolidayRepo{}
	svc := calendar.NewService(repo)

	resp, err := svc.Create(ctx, calendar.CreateHolidayRequest{Date: "2026-12-25", Name: "Christmas"})
	assert.NoError(t, err)
	assert.Equal(t, "Friday", resp.Weekday)

	_, err = svc.Create(ctx, calendar.CreateHolidayRequest{Date: "2026-12-25", Name: "Duplicate"})
	assert.ErrorIs(t, err, calendarerrors.ErrHolidayDateExists)

	_, err = svc.Create(ctx, calendar.CreateHolidayRequest{Date: "25/12/2026", Name: "Bad"})
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidHolidayDate)

	items, err := svc.ListYear(ctx, 2026)
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = svc.ListYear(ctx, 2027)
	assert.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.ListYear(ctx, 26)
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidYear)

	assert.NoError(t, svc.Delete(ctx, resp.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "bad"), calendarerrors.ErrInvalidHolidayID)
}
