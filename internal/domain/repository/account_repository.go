// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"moteo/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a handle.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Every method is a single round-trip against the backing table; the unique
// constraint on the handle column is what guarantees uniqueness, not Exists.
type AccountRepository interface {
	// Exists reports whether an account with the handle is currently persisted.
	Exists(ctx context.Context, handle string) (bool, error)

	// Create persists a new account. Inserting a handle that already exists
	// surfaces the store's uniqueness violation as a conflict error, so two
	// concurrent registrations of the same handle cannot both succeed.
	Create(ctx context.Context, account *entity.Account) error

	// FindPasswordHash retrieves the stored password hash for a handle.
	// Returns ErrAccountNotFound when the handle is not persisted.
	FindPasswordHash(ctx context.Context, handle string) (string, error)

	// UpdateCredentials rewrites the password hash and city together in one
	// statement. Returns ErrAccountNotFound when no row matches the handle.
	UpdateCredentials(ctx context.Context, handle, passwordHash, city string) error

	// FindProfile retrieves the externally visible projection of an account.
	// Returns ErrAccountNotFound when the handle is not persisted.
	FindProfile(ctx context.Context, handle string) (*entity.Account, error)
}
