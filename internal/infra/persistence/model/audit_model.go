package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only.
type AuditLogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorEmail string    `gorm:"type:varchar(255);not null;index"`
	Action     string    `gorm:"type:varchar(64);not null;index"`
	EntityType string    `gorm:"type:varchar(64);not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
