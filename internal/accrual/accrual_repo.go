package accrual

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/apperror"

	"gorm.io/gorm"
)

//go:generate mockgen -source=accrual_repo.go -destination=mock/accrual_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateIfAbsent(ctx context.Context, a *LeaveAccrual) (bool, error)
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

// CreateIfAbsent inserts the accrual row and reports false when the period was already recorded.
func (r *repository) CreateIfAbsent(ctx context.Context, a *LeaveAccrual) (bool, error) {
	res := r.conn(ctx).Exec(
		`INSERT INTO leave_accruals (id, employee_id, leave_type_id, period, days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (employee_id, leave_type_id, period) DO NOTHING`,
		a.ID, a.EmployeeID, a.LeaveTypeID, a.Period, a.Days, a.CreatedAt,
	)
	if res.Error != nil {
		return false, apperror.StorageUnavailable(res.Error)
	}
	return res.RowsAffected == 1, nil
}
