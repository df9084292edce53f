package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays   int       `gorm:"type:int;not null"`
	WorkingDays int       `gorm:"type:int;not null;default:0"`
	Reason      string    `gorm:"type:text"`

	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`
	DecidedAt    *time.Time
	ManagerNotes *string `gorm:"type:text"`

	EmergencyContact   string `gorm:"type:varchar(100)"`
	AddressDuringLeave string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leave_requests_deleted_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
