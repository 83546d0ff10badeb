package usecase

import (
	"context"

	"aegis/internal/domain/entity"
	"aegis/internal/domain/repository"

	"github.com/google/uuid"
)

// GetAuditLogsInput selects a page of the audit trail.
type GetAuditLogsInput struct {
	ActorID    uuid.UUID
	Action     string
	AdminEmail string
	Page       int
	Size       int
}

// AuditUsecase defines the interface for the append-only record of
// privileged administrative actions.
type AuditUsecase interface {
	// Record appends one audit entry attributing an action to an actor.
	Record(ctx context.Context, actorEmail string, action entity.AuditAction, entityType string, entityID uuid.UUID) error

	// GetAuditLogs returns a page of the trail, newest first.
	// SUPER_ADMIN only.
	GetAuditLogs(ctx context.Context, input GetAuditLogsInput) (*repository.AuditLogPage, error)
}
