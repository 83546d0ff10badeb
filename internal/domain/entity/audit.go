package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction tags a privileged administrative action in the audit trail.
type AuditAction string

const (
	AuditCreatedAdmin            AuditAction = "CREATED_ADMIN"
	AuditBlockedAdmin            AuditAction = "BLOCKED_ADMIN"
	AuditUnblockedAdmin          AuditAction = "UNBLOCKED_ADMIN"
	AuditChangeAdminRole         AuditAction = "CHANGE_ADMIN_ROLE"
	AuditForceResetAdminPassword AuditAction = "FORCE_RESET_ADMIN_PASSWORD"
	AuditBlockedUser             AuditAction = "BLOCK_USER"
	AuditUnblockedUser           AuditAction = "UNBLOCK_USER"
)

// String returns the string representation of the AuditAction.
func (a AuditAction) String() string {
	return string(a)
}

// AuditLogEntry is an immutable record of a privileged administrative action,
// attributable to the acting admin. Entries are append-only; nothing in the
// system mutates or deletes them.
type AuditLogEntry struct {
	ID         uuid.UUID   // The unique identifier for this entry.
	ActorEmail string      // Email of the admin who performed the action.
	Action     AuditAction // What was done.
	EntityType string      // Kind of the target entity, e.g. "ADMIN" or "USER".
	EntityID   uuid.UUID   // Identifier of the target entity.
	CreatedAt  time.Time   // When the action happened.
}
