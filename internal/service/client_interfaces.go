package service

import (
	"context"
	"time"

	"github.com/azgeda96/secure-pass-vault/models"
)

// Notifier receives transient user-facing notices from the client service
// layer. The terminal UI implements it with status messages; tests use
// NopNotifier.
type Notifier interface {
	// Success reports a completed operation.
	Success(msg string)

	// Error reports a failed operation.
	Error(msg string)
}

// ClientAuthService defines the client-side contract for account
// registration and sign-in against the vault server.
type ClientAuthService interface {
	// SignUp validates the email and password locally, creates a new account
	// on the server, and stores the session token in the adapter.
	SignUp(ctx context.Context, email, password string) error

	// SignIn validates the email and password locally and authenticates
	// against the server. On success the session token is stored in the
	// adapter.
	SignIn(ctx context.Context, email, password string) error

	// SignOut drops the session token. Purely local; the server keeps no
	// session state beyond the JWT.
	SignOut()

	// Authenticated reports whether a session token is currently held.
	Authenticated() bool

	// CurrentEmail returns the email of the signed-in account, or an empty
	// string when signed out.
	CurrentEmail() string
}

// ClientCredentialService is the single source of truth for the signed-in
// user's record set. It mirrors remote mutation results into a local
// snapshot and reports outcomes through the Notifier.
//
// The local snapshot is always either the last successfully fetched or
// mutated state, or untouched after a failed call. Mutations are never
// applied optimistically.
type ClientCredentialService interface {
	// Load fetches all records of the signed-in user, ordered by machine
	// name ascending, and replaces the local snapshot. When nobody is signed
	// in it is a no-op. On failure the previous snapshot is kept.
	Load(ctx context.Context) error

	// Snapshot returns a copy of the current local record set.
	Snapshot() []models.Credential

	// Create validates the draft, stores it on the server, and appends the
	// returned record to the snapshot. Returns ErrNotAuthenticated when
	// nobody is signed in.
	Create(ctx context.Context, draft models.CredentialDraft) error

	// Update sends a partial patch for the record with the given id and
	// replaces the matching snapshot entry with the returned record.
	Update(ctx context.Context, id string, patch models.CredentialPatch) error

	// Delete removes the record with the given id on the server and drops it
	// from the snapshot.
	Delete(ctx context.Context, id string) error
}

// ClientRefreshJob is a background worker that periodically reloads the
// record set so that edits made from other sessions become visible.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It reloads every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
