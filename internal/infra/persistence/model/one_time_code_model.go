package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCodeModel mirrors the 'one_time_codes' table.
// The composite unique index keeps at most one live code per (purpose, email).
type OneTimeCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Purpose   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_codes_purpose_email"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_codes_purpose_email"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Attempts  int       `gorm:"not null;default:0"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}
