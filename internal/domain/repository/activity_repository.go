package repository

import (
	"context"

	"aegis/internal/domain/entity"
)

// ActivityRepository defines persistence for the append-only record of
// security-relevant end-user events. There is deliberately no update or
// delete operation.
type ActivityRepository interface {
	// Append persists a new activity entry.
	Append(ctx context.Context, entry *entity.ActivityEntry) error

	// FindByEmail returns all entries for the email, newest first.
	FindByEmail(ctx context.Context, email string) ([]*entity.ActivityEntry, error)
}
