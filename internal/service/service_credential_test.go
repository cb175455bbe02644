package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/mock"
	"github.com/azgeda96/secure-pass-vault/internal/store"
	"github.com/azgeda96/secure-pass-vault/models"
)

func newTestCredentialService(t *testing.T, ctrl *gomock.Controller) (CredentialService, *mock.MockCredentialRepository) {
	t.Helper()
	mockRepo := mock.NewMockCredentialRepository(ctrl)
	return NewCredentialService(mockRepo, logger.Nop()), mockRepo
}

func strPtr(s string) *string { return &s }

// ── List ─────────────────────────────────────────────────────────────────────

func TestCredentialList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	records := []models.Credential{
		{ID: "a", UserID: 7, Machine: "alpha", Service: "ssh"},
		{ID: "b", UserID: 7, Machine: "beta", Service: "nginx"},
	}
	mockRepo.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return(records, nil)

	got, err := svc.List(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCredentialList_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	mockRepo.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return(nil, assert.AnError)

	_, err := svc.List(context.Background(), 7)

	assert.ErrorIs(t, err, assert.AnError)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCredentialCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	draft := models.CredentialDraft{Machine: "alpha", Service: "ssh", Status: models.StatusLocal}
	mockRepo.EXPECT().
		Insert(gomock.Any(), int64(7), draft).
		Return(models.Credential{ID: "new-id", UserID: 7, Machine: "alpha", Service: "ssh", CreatedAt: time.Now()}, nil)

	created, err := svc.Create(context.Background(), 7, draft)

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
}

func TestCredentialCreate_InvalidDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Insert expectation: an invalid draft never reaches the store.
	svc, _ := newTestCredentialService(t, ctrl)

	tests := []struct {
		name  string
		draft models.CredentialDraft
		field error
	}{
		{"missing machine", models.CredentialDraft{Service: "ssh"}, models.ErrMachineRequired},
		{"missing service", models.CredentialDraft{Machine: "alpha"}, models.ErrServiceRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 7, tt.draft)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.field)
		})
	}
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestCredentialUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	patch := models.CredentialPatch{Status: strPtr(models.StatusOnline)}
	mockRepo.EXPECT().
		Update(gomock.Any(), int64(7), "abc", patch).
		Return(models.Credential{ID: "abc", UserID: 7, Machine: "alpha", Service: "ssh", Status: models.StatusOnline}, nil)

	updated, err := svc.Update(context.Background(), 7, "abc", patch)

	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, updated.Status)
}

func TestCredentialUpdate_BlankRequiredFieldRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCredentialService(t, ctrl)

	tests := []struct {
		name  string
		patch models.CredentialPatch
		field error
	}{
		{"blank machine", models.CredentialPatch{Machine: strPtr("")}, models.ErrMachineRequired},
		{"blank service", models.CredentialPatch{Service: strPtr("")}, models.ErrServiceRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), 7, "abc", tt.patch)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.field)
		})
	}
}

func TestCredentialUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	mockRepo.EXPECT().
		Update(gomock.Any(), int64(7), "missing", gomock.Any()).
		Return(models.Credential{}, store.ErrCredentialNotFound)

	_, err := svc.Update(context.Background(), 7, "missing", models.CredentialPatch{Person: strPtr("Bob")})

	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestCredentialDelete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(7), "abc").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7, "abc"))
}

func TestCredentialDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCredentialService(t, ctrl)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(7), "missing").Return(store.ErrCredentialNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 7, "missing"), store.ErrCredentialNotFound)
}
