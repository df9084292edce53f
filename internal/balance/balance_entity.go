package balance

import (
	"time"

	"github.com/google/uuid"
)

// LeaveBalance is the per employee, per leave type day counter.
// remaining_days only moves through the mutation protocol, accrual and HR resets.
type LeaveBalance struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type"`
	LeaveTypeID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type"`
	RemainingDays      int       `gorm:"type:int;not null;default:0"`
	CarriedForwardDays int       `gorm:"type:int;not null;default:0"`
	TotalEarnedDays    int       `gorm:"type:int;not null;default:0"`
	LastUpdated        time.Time `gorm:"autoUpdateTime"`
	CreatedAt          time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
