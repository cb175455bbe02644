package service

import (
	"github.com/azgeda96/secure-pass-vault/internal/adapter"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
)

// ClientServices bundles the client-side service layer.
type ClientServices struct {
	AuthService       ClientAuthService
	CredentialService ClientCredentialService
	RefreshJob        ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, notifier Notifier, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, logger)
	credentialSvc := NewClientCredentialService(authSvc, serverAdapter, notifier, logger)

	return &ClientServices{
		AuthService:       authSvc,
		CredentialService: credentialSvc,
		RefreshJob:        NewClientRefreshJob(credentialSvc),
	}
}

// NopNotifier discards all notices. Intended for tests and headless use.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
