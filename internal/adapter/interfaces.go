// Package adapter provides transport-layer abstractions for communicating
// with the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/azgeda96/secure-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful SignUp or SignIn.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp creates a new account on the server. On success it stores the
	// returned bearer token via SetToken. Returns [ErrConflict] (wrapped)
	// when the email is already registered.
	SignUp(ctx context.Context, user models.User) error

	// SignIn authenticates an existing account. On success it stores the
	// returned bearer token via SetToken. Returns [ErrUnauthorized]
	// (wrapped) when the email or password is rejected.
	SignIn(ctx context.Context, user models.User) error

	// ListCredentials fetches all records of the authenticated user, ordered
	// by machine name ascending.
	ListCredentials(ctx context.Context) ([]models.Credential, error)

	// CreateCredential stores a new record and returns it with the
	// server-assigned id and timestamps.
	CreateCredential(ctx context.Context, draft models.CredentialDraft) (models.Credential, error)

	// UpdateCredential applies a partial patch to one record and returns the
	// updated record. Returns [ErrNotFound] (wrapped) when no record with
	// the given id belongs to the user.
	UpdateCredential(ctx context.Context, id string, patch models.CredentialPatch) (models.Credential, error)

	// DeleteCredential removes one record permanently. Returns [ErrNotFound]
	// (wrapped) when no record with the given id belongs to the user.
	DeleteCredential(ctx context.Context, id string) error
}
