package accrual

import (
	"time"

	"github.com/google/uuid"
)

// LeaveAccrual records one credit so a period is never applied twice.
// Period is YYYY-MM for monthly credits and YYYY-CF for year end carry forward.
type LeaveAccrual struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_accrual_period"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_accrual_period"`
	Period      string    `gorm:"type:varchar(7);not null;uniqueIndex:uq_leave_accrual_period"`
	Days        int       `gorm:"type:int;not null"`
	CreatedAt   time.Time
}

func (LeaveAccrual) TableName() string {
	return "leave_accruals"
}
