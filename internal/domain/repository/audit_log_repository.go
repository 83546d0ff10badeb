package repository

import (
	"context"

	"aegis/internal/domain/entity"
)

// AuditLogFilter is an explicit predicate set for audit trail queries.
// Empty fields are skipped; populated ones are combined with logical AND.
type AuditLogFilter struct {
	Action     string // Exact match on the action tag.
	ActorEmail string // Exact match on the acting admin's email.
}

// AuditLogPage is one page of audit entries plus the total row count.
type AuditLogPage struct {
	Entries []*entity.AuditLogEntry
	Total   int64
	Page    int
	Size    int
}

// AuditLogRepository defines persistence for the append-only audit trail.
// There is deliberately no update or delete operation.
type AuditLogRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *entity.AuditLogEntry) error

	// Search returns one page of entries matching the filter, newest first.
	Search(ctx context.Context, filter AuditLogFilter, page Pagination) (*AuditLogPage, error)
}
