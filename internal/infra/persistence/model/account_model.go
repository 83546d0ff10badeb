// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	Name                string    `gorm:"type:varchar(100)"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	Role                string    `gorm:"type:varchar(20);not null;default:'USER';index"`
	Active              bool      `gorm:"not null;default:false"`
	EmailVerified       bool      `gorm:"not null;default:false"`
	FailedLoginAttempts int       `gorm:"not null;default:0"`
	LockedUntil         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
