package leavetype

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return mapRepositoryError(r.conn(ctx).Create(lt).Error)
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var items []LeaveType
	err := r.conn(ctx).Order("name ASC").Find(&items).Error
	return items, mapRepositoryError(err)
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	if err := r.conn(ctx).First(&lt, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &lt, nil
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return mapRepositoryError(r.conn(ctx).Save(lt).Error)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&LeaveType{}, "id = ?", id)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}
