// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"aegis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountFilter is an explicit predicate set for account searches. Zero-value
// fields are skipped; the populated ones are combined with logical AND.
type AccountFilter struct {
	Email  string        // Case-insensitive substring match on email.
	Name   string        // Case-insensitive substring match on name.
	Active *bool         // Exact match on the active flag when non-nil.
	Roles  []entity.Role // Membership match on role when non-empty.
}

// Pagination selects one page of a result set.
type Pagination struct {
	Page int // Zero-based page index.
	Size int // Rows per page.
}

// SortOrder selects the sort column and direction for listings.
type SortOrder struct {
	Field string // Column to sort by, e.g. "email" or "created_at".
	Desc  bool
}

// AccountPage is one page of accounts plus the total row count for the filter.
type AccountPage struct {
	Accounts []*entity.Account
	Total    int64
	Page     int
	Size     int
}

// AccountCounts holds the dashboard aggregates over all accounts.
type AccountCounts struct {
	Total      int64
	Active     int64
	Inactive   int64
	Admins     int64
	Verified   int64
	Unverified int64
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	// Lookup is case-insensitive; emails are stored lowercase.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ExistsByEmail reports whether any account owns the email address.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account permanently. Normal flows disable accounts
	// instead; this backs the explicit account-deletion operation only.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search returns one page of accounts matching the filter.
	Search(ctx context.Context, filter AccountFilter, page Pagination, sort SortOrder) (*AccountPage, error)

	// Counts returns the dashboard aggregates over all accounts.
	Counts(ctx context.Context) (*AccountCounts, error)

	// AcquireUpdateLock takes a row-level lock on the account so that
	// concurrent read-modify-write sequences against the same account are
	// serialized. Only meaningful inside a transaction.
	AcquireUpdateLock(ctx context.Context, id uuid.UUID) error
}
