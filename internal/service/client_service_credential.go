package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/azgeda96/secure-pass-vault/internal/adapter"
	"github.com/azgeda96/secure-pass-vault/internal/app"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/models"
)

// clientCredentialService implements ClientCredentialService. It holds the
// in-memory record snapshot and keeps it consistent with the server: a
// mutation only touches the snapshot after the server has confirmed it.
type clientCredentialService struct {
	auth     ClientAuthService
	adapter  adapter.ServerAdapter
	notifier Notifier
	logger   *logger.Logger

	mu      sync.RWMutex
	records []models.Credential
}

func NewClientCredentialService(auth ClientAuthService, serverAdapter adapter.ServerAdapter, notifier Notifier, logger *logger.Logger) ClientCredentialService {
	return &clientCredentialService{
		auth:     auth,
		adapter:  serverAdapter,
		notifier: notifier,
		logger:   logger,
	}
}

// Load implements ClientCredentialService. A failed fetch keeps the previous
// snapshot so the user does not lose a working list to a transient error.
func (c *clientCredentialService) Load(ctx context.Context) error {
	if !c.auth.Authenticated() {
		return nil
	}

	records, err := c.adapter.ListCredentials(ctx)
	if err != nil {
		c.logger.Err(err).Msg("loading credentials failed")
		c.notifier.Error(app.UILoadFailed)
		return fmt.Errorf("loading credentials failed: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	c.records = records
	c.mu.Unlock()

	return nil
}

// Snapshot implements ClientCredentialService.
func (c *clientCredentialService) Snapshot() []models.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]models.Credential, len(c.records))
	copy(snapshot, c.records)
	return snapshot
}

// Create implements ClientCredentialService. The record is appended only
// after the server returns it with its assigned id and timestamps; there is
// no optimistic insert.
func (c *clientCredentialService) Create(ctx context.Context, draft models.CredentialDraft) error {
	if !c.auth.Authenticated() {
		c.notifier.Error(app.UINotAuthenticated)
		return ErrNotAuthenticated
	}

	if err := draft.Validate(); err != nil {
		c.notifier.Error(app.UICreateFailed)
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := c.adapter.CreateCredential(ctx, draft)
	if err != nil {
		c.logger.Err(err).Msg("creating credential failed")
		c.notifier.Error(app.UICreateFailed)
		return fmt.Errorf("creating credential failed: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	c.records = append(c.records, created)
	c.mu.Unlock()

	c.notifier.Success(app.UICreated)
	return nil
}

// Update implements ClientCredentialService. The snapshot entry is replaced
// wholesale with the record the server returns, never patched locally.
func (c *clientCredentialService) Update(ctx context.Context, id string, patch models.CredentialPatch) error {
	updated, err := c.adapter.UpdateCredential(ctx, id, patch)
	if err != nil {
		c.logger.Err(err).Str("id", id).Msg("updating credential failed")
		c.notifier.Error(app.UIUpdateFailed)
		return fmt.Errorf("updating credential failed: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	for i := range c.records {
		if c.records[i].ID == id {
			c.records[i] = updated
			break
		}
	}
	c.mu.Unlock()

	c.notifier.Success(app.UIUpdated)
	return nil
}

// Delete implements ClientCredentialService.
func (c *clientCredentialService) Delete(ctx context.Context, id string) error {
	if err := c.adapter.DeleteCredential(ctx, id); err != nil {
		c.logger.Err(err).Str("id", id).Msg("deleting credential failed")
		c.notifier.Error(app.UIDeleteFailed)
		return fmt.Errorf("deleting credential failed: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	for i := range c.records {
		if c.records[i].ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.notifier.Success(app.UIDeleted)
	return nil
}
