package balance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*LeaveBalance, error)
	LockByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*LeaveBalance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)
	FindAll(ctx context.Context) ([]LeaveBalance, error)
	DeductIfSufficient(ctx context.Context, employeeID, leaveTypeID string, days int) (bool, error)
	Restore(ctx context.Context, employeeID, leaveTypeID string, days int) error
	Accrue(ctx context.Context, employeeID, leaveTypeID string, days int) error
	Upsert(ctx context.Context, b *LeaveBalance) error
	Save(ctx context.Context, b *LeaveBalance) error
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

// conn binds gorm to the caller's transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).
		First(&b).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &b, nil
}

func (r *repository) LockByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).
		First(&b).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &b, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error) {
	var items []LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("leave_type_id ASC").
		Find(&items).Error
	return items, mapRepositoryError(err)
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveBalance, error) {
	var items []LeaveBalance
	err := r.conn(ctx).Order("employee_id ASC, leave_type_id ASC").Find(&items).Error
	return items, mapRepositoryError(err)
}

// DeductIfSufficient subtracts days only when the stored remaining_days still covers them.
func (r *repository) DeductIfSufficient(ctx context.Context, employeeID, leaveTypeID string, days int) (bool, error) {
	res := r.conn(ctx).Exec(
		`UPDATE leave_balances
		SET remaining_days = remaining_days - ?, last_updated = NOW()
		WHERE employee_id = ? AND leave_type_id = ? AND remaining_days >= ?`,
		days, employeeID, leaveTypeID, days,
	)
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) Restore(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	res := r.conn(ctx).Exec(
		`UPDATE leave_balances
		SET remaining_days = remaining_days + ?, last_updated = NOW()
		WHERE employee_id = ? AND leave_type_id = ?`,
		days, employeeID, leaveTypeID,
	)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *repository) Accrue(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	res := r.conn(ctx).Exec(
		`UPDATE leave_balances
		SET remaining_days = remaining_days + ?, total_earned_days = total_earned_days + ?, last_updated = NOW()
		WHERE employee_id = ? AND leave_type_id = ?`,
		days, days, employeeID, leaveTypeID,
	)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *repository) Upsert(ctx context.Context, b *LeaveBalance) error {
	err := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"remaining_days", "carried_forward_days", "total_earned_days", "last_updated"}),
		}).
		Create(b).Error
	return mapRepositoryError(err)
}

func (r *repository) Save(ctx context.Context, b *LeaveBalance) error {
	return mapRepositoryError(r.conn(ctx).Save(b).Error)
}
