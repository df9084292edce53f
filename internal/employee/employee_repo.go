package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]Employee, error)
	FindDirectReports(ctx context.Context, managerID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	if err := r.conn(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &emp, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Employee, error) {
	var emps []Employee
	if len(ids) == 0 {
		return emps, nil
	}
	err := r.conn(ctx).
		Where("id IN ?", ids).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, mapRepositoryError(err)
}

func (r *repository) FindDirectReports(ctx context.Context, managerID string) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Where("manager_id = ?", managerID).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, mapRepositoryError(err)
}
