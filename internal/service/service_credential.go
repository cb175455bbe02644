package service

import (
	"context"
	"fmt"

	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/store"
	"github.com/azgeda96/secure-pass-vault/models"
)

// credentialService is the concrete implementation of CredentialService.
// The repository already scopes every query by owner; this layer adds the
// required-field validation and keeps handlers free of business rules.
type credentialService struct {
	credentialRepository store.CredentialRepository
	logger               *logger.Logger
}

// NewCredentialService constructs a CredentialService over the given
// repository.
func NewCredentialService(credentialRepository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		logger:               logger,
	}
}

// List returns every record of the owner, ordered by machine name ascending.
func (c *credentialService) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	credentials, err := c.credentialRepository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing credentials failed: %w", err)
	}

	return credentials, nil
}

// Create validates the draft and stores it for the owner. The returned
// record carries the store-assigned id and timestamps.
//
// Returns ErrInvalidDataProvided (wrapping the field error) when machine or
// service is missing.
func (c *credentialService) Create(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := draft.Validate(); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid credential draft")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := c.credentialRepository.Insert(ctx, userID, draft)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("credential insert failed")
		return models.Credential{}, fmt.Errorf("credential insert failed: %w", err)
	}

	return created, nil
}

// Update applies a partial patch to the record. A patch that would blank a
// required field is rejected; a patch with no fields at all is rejected by
// the repository with store.ErrEmptyPatch.
func (c *credentialService) Update(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if patch.Machine != nil && *patch.Machine == "" {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrMachineRequired)
	}
	if patch.Service != nil && *patch.Service == "" {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrServiceRequired)
	}

	updated, err := c.credentialRepository.Update(ctx, userID, id, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("id", id).Msg("credential update failed")
		return models.Credential{}, fmt.Errorf("credential update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the record permanently.
func (c *credentialService) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	if err := c.credentialRepository.Delete(ctx, userID, id); err != nil {
		log.Err(err).Int64("user_id", userID).Str("id", id).Msg("credential delete failed")
		return fmt.Errorf("credential delete failed: %w", err)
	}

	return nil
}
