package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "go-leave/internal/employee/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Status      string
	LeaveTypeID string
	From        *time.Time
	To          *time.Time
}

// ApprovalQuery selects the requests an approver may act on.
type ApprovalQuery struct {
	All               bool
	EmployeeIDs       []string
	ExcludeEmployeeID string
	Status            string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]LeaveRequest, error)
	FindForApprover(ctx context.Context, q ApprovalQuery) ([]LeaveRequest, error)
	LockEmployee(ctx context.Context, employeeID string) error
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	UpdatePending(ctx context.Context, l *LeaveRequest) (bool, error)
	TransitionStatus(ctx context.Context, t StatusTransition) (bool, error)
	SoftDeletePending(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return mapRepositoryError(r.conn(ctx).Create(l).Error)
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.conn(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &l, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]LeaveRequest, error) {
	db := r.conn(ctx).Where("employee_id = ?", employeeID)
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.LeaveTypeID != "" {
		db = db.Where("leave_type_id = ?", filter.LeaveTypeID)
	}
	if filter.From != nil {
		db = db.Where("end_date >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("start_date <= ?", *filter.To)
	}

	var items []LeaveRequest
	err := db.Order("created_at DESC").Find(&items).Error
	return items, mapRepositoryError(err)
}

func (r *repository) FindForApprover(ctx context.Context, q ApprovalQuery) ([]LeaveRequest, error) {
	if !q.All && len(q.EmployeeIDs) == 0 {
		return []LeaveRequest{}, nil
	}

	db := r.conn(ctx).Where("status = ?", q.Status)
	if !q.All {
		db = db.Where("employee_id IN ?", q.EmployeeIDs)
	}
	if q.ExcludeEmployeeID != "" {
		db = db.Where("employee_id <> ?", q.ExcludeEmployeeID)
	}

	var items []LeaveRequest
	err := db.Order("start_date ASC").Find(&items).Error
	return items, mapRepositoryError(err)
}

// LockEmployee takes a row lock on the employee so overlap checks and inserts
// for the same employee run one at a time until the transaction ends.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	var row struct{ ID string }
	err := r.conn(ctx).
		Table("employees").
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return mapRepositoryError(err)
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", []string{StatusCancelled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, mapRepositoryError(err)
}

// UpdatePending rewrites the editable fields while the request is still PENDING.
func (r *repository) UpdatePending(ctx context.Context, l *LeaveRequest) (bool, error) {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", l.ID, StatusPending).
		Updates(map[string]interface{}{
			"leave_type_id":        l.LeaveTypeID,
			"start_date":           l.StartDate,
			"end_date":             l.EndDate,
			"total_days":           l.TotalDays,
			"working_days":         l.WorkingDays,
			"reason":               l.Reason,
			"emergency_contact":    l.EmergencyContact,
			"address_during_leave": l.AddressDuringLeave,
		})
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

// TransitionStatus moves a request from t.From to t.To and reports false when
// the stored status was no longer t.From.
func (r *repository) TransitionStatus(ctx context.Context, t StatusTransition) (bool, error) {
	values := map[string]interface{}{"status": t.To}
	if t.ClearDecision {
		values["approved_by"] = nil
		values["decided_at"] = nil
	} else {
		if t.ApprovedBy != nil {
			values["approved_by"] = *t.ApprovedBy
		}
		if t.DecidedAt != nil {
			values["decided_at"] = *t.DecidedAt
		}
	}
	if t.ManagerNotes != nil {
		values["manager_notes"] = *t.ManagerNotes
	}

	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", t.ID, t.From).
		Updates(values)
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SoftDeletePending(ctx context.Context, id string) (bool, error) {
	res := r.conn(ctx).
		Where("id = ? AND status = ?", id, StatusPending).
		Delete(&LeaveRequest{})
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}
