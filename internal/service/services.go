package service

import (
	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/store"
)

// Services bundles the server-side service layer.
type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		CredentialService: NewCredentialService(storages.CredentialRepository, logger),
	}
}
