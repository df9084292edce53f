package leavetype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveType struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_type_name"`
	MaxDays          int       `gorm:"type:int;not null;default:30"`
	CanCarryForward  bool      `gorm:"not null;default:false"`
	RequiresApproval bool      `gorm:"not null;default:true"`
	Description      string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
