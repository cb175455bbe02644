package service

import (
	"context"

	"github.com/azgeda96/secure-pass-vault/models"
)

// AuthService handles account registration, sign-in, and the JWT token
// lifecycle on the server side.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService owns the business rules for credential records:
// required-field validation and owner scoping on every operation.
type CredentialService interface {
	List(ctx context.Context, userID int64) ([]models.Credential, error)
	Create(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error)
	Update(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error)
	Delete(ctx context.Context, userID int64, id string) error
}
