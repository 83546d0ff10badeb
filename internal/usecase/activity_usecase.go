package usecase

import (
	"context"

	"aegis/internal/domain/entity"
)

// ActivityUsecase defines the interface for the append-only record of
// security-relevant end-user events.
type ActivityUsecase interface {
	// Record appends one activity entry for the email.
	Record(ctx context.Context, email string, action entity.ActivityAction, ip string) error

	// GetActivity returns all entries for the email, newest first.
	GetActivity(ctx context.Context, email string) ([]*entity.ActivityEntry, error)
}
