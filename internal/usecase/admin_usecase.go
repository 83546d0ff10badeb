package usecase

import (
	"context"

	"aegis/internal/domain/entity"
	"aegis/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAdminInput defines the data required to create an ADMIN account.
type CreateAdminInput struct {
	ActorID  uuid.UUID
	Name     string
	Email    string
	Password string
}

// UpdateAdminStatusInput toggles an admin's active flag.
type UpdateAdminStatusInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	Active   bool
}

// UpdateAdminRoleInput changes an admin's role.
type UpdateAdminRoleInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	NewRole  entity.Role
}

// ForceResetAdminPasswordInput overrides an admin's password without the
// old-password check.
type ForceResetAdminPasswordInput struct {
	ActorID     uuid.UUID
	TargetID    uuid.UUID
	NewPassword string
}

// UpdateUserStatusInput toggles an end-user account's active flag.
type UpdateUserStatusInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	Active   bool
}

// ListAdminsInput selects a page of administrative accounts.
type ListAdminsInput struct {
	ActorID   uuid.UUID
	Active    *bool
	Page      int
	Size      int
	SortField string
	SortDesc  bool
}

// SearchUsersInput selects a page of end-user accounts by optional filters.
type SearchUsersInput struct {
	ActorID uuid.UUID
	Email   string
	Name    string
	Active  *bool
	Page    int
	Size    int
}

// --- Output DTOs ---

// DashboardStats holds the account aggregates shown on the admin dashboard.
type DashboardStats struct {
	TotalAccounts      int64
	ActiveAccounts     int64
	InactiveAccounts   int64
	AdminAccounts      int64
	VerifiedAccounts   int64
	UnverifiedAccounts int64
}

// AdminUsecase defines the interface for privileged account management.
// Every mutation verifies the actor's role first and appends an audit entry
// in the same transaction as the change.
type AdminUsecase interface {
	// CreateAdmin creates an active, pre-verified ADMIN account.
	// SUPER_ADMIN only.
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*entity.Account, error)

	// UpdateAdminStatus blocks or unblocks an ADMIN account.
	// SUPER_ADMIN only; self-targeting is rejected.
	UpdateAdminStatus(ctx context.Context, input UpdateAdminStatusInput) (*entity.Account, error)

	// UpdateAdminRole moves an active admin between ADMIN and SUPER_ADMIN.
	// SUPER_ADMIN only; self-targeting and no-op changes are rejected.
	UpdateAdminRole(ctx context.Context, input UpdateAdminRoleInput) (*entity.Account, error)

	// ForceResetAdminPassword stores a new password for another admin
	// without knowing the old one. SUPER_ADMIN only.
	ForceResetAdminPassword(ctx context.Context, input ForceResetAdminPasswordInput) error

	// UpdateUserStatus blocks or unblocks an end-user account.
	// ADMIN or SUPER_ADMIN.
	UpdateUserStatus(ctx context.Context, input UpdateUserStatusInput) (*entity.Account, error)

	// ListAdmins returns a page of accounts with administrative roles.
	ListAdmins(ctx context.Context, input ListAdminsInput) (*repository.AccountPage, error)

	// GetAdminByID returns a single administrative account.
	GetAdminByID(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Account, error)

	// SearchUsers returns a page of end-user accounts matching the filters.
	SearchUsers(ctx context.Context, input SearchUsersInput) (*repository.AccountPage, error)

	// GetDashboardStats returns account aggregates for reporting.
	GetDashboardStats(ctx context.Context, actorID uuid.UUID) (*DashboardStats, error)
}
