package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/azgeda96/secure-pass-vault/internal/adapter"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/models"
)

// clientAuthService implements ClientAuthService over a ServerAdapter. The
// adapter owns the session token; this layer owns local validation and the
// signed-in email.
type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu    sync.RWMutex
	email string
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// SignUp implements ClientAuthService. Validation happens before any network
// call so malformed input never leaves the client.
func (a *clientAuthService) SignUp(ctx context.Context, email, password string) error {
	user := models.User{Email: email, Password: password}
	if err := validateSignIn(user); err != nil {
		return err
	}

	if err := a.adapter.SignUp(ctx, user); err != nil {
		a.logger.Err(err).Str("email", email).Msg("sign up failed")
		return fmt.Errorf("sign up failed: %w", mapAdapterError(err))
	}

	a.setEmail(email)
	return nil
}

// SignIn implements ClientAuthService.
func (a *clientAuthService) SignIn(ctx context.Context, email, password string) error {
	user := models.User{Email: email, Password: password}
	if err := validateSignIn(user); err != nil {
		return err
	}

	if err := a.adapter.SignIn(ctx, user); err != nil {
		a.logger.Err(err).Str("email", email).Msg("sign in failed")
		return fmt.Errorf("sign in failed: %w", mapAdapterError(err))
	}

	a.setEmail(email)
	return nil
}

// SignOut implements ClientAuthService.
func (a *clientAuthService) SignOut() {
	a.adapter.SetToken("")
	a.setEmail("")
}

// Authenticated implements ClientAuthService.
func (a *clientAuthService) Authenticated() bool {
	return a.adapter.Token() != ""
}

// CurrentEmail implements ClientAuthService.
func (a *clientAuthService) CurrentEmail() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.email
}

func (a *clientAuthService) setEmail(email string) {
	a.mu.Lock()
	a.email = email
	a.mu.Unlock()
}
