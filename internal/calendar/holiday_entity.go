package calendar

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_holiday_date"`
	Name      string    `gorm:"type:varchar(150);not null"`
	CreatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
