package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenModel mirrors the 'password_reset_tokens' table.
// The unique email index keeps at most one live token per account.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string    `gorm:"type:varchar(64);unique;not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
