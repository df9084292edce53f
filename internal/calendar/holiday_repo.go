package calendar

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(h).Error)
}

func (r *repository) FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var items []Holiday
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&items).Error
	return items, mapRepositoryError(err)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Holiday{}, "id = ?", id)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}
