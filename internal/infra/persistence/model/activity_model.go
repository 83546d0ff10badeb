package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activity_entries' table. Rows are append-only.
type ActivityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Action    string    `gorm:"type:varchar(64);not null"`
	IPAddress string    `gorm:"type:varchar(45)"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activity_entries"
}
