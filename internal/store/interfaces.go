// Package store implements the PostgreSQL persistence layer of the vault
// server: user accounts and owner-scoped credential records.
package store

import (
	"context"

	"github.com/azgeda96/secure-pass-vault/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// store-assigned UserID and CreatedAt.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account matching user.Email.
	// Returns ErrNoUserWasFound if no such account exists.
	FindUserByEmail(ctx context.Context, user models.User) (models.User, error)
}

// CredentialRepository persists credential records. Every method is scoped by
// the owning user: a record belonging to another user behaves as if it does
// not exist.
type CredentialRepository interface {
	// ListByOwner returns all records of the owner ordered by machine name
	// ascending, the order the list view expects from the store.
	ListByOwner(ctx context.Context, userID int64) ([]models.Credential, error)

	// Insert stores a new record built from draft for the owner and returns
	// the full row with store-assigned id and timestamps.
	Insert(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error)

	// Update applies the non-nil fields of patch to the record and returns
	// the updated row. updated_at is refreshed by the store.
	// Returns ErrCredentialNotFound if the record does not exist or belongs
	// to a different owner.
	Update(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error)

	// Delete removes the record permanently.
	// Returns ErrCredentialNotFound if the record does not exist or belongs
	// to a different owner.
	Delete(ctx context.Context, userID int64, id string) error
}
