package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/internal/store"
	"github.com/azgeda96/secure-pass-vault/internal/utils"
	"github.com/azgeda96/secure-pass-vault/models"
)

const testCredentialID = "018f7d4e-7d31-7b7a-b0c8-2f9d23c5a111"

// ─────────────────────────────────────────────
// Mock CredentialService
// ─────────────────────────────────────────────

type mockCredentialService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Credential, error)
	createFn func(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error)
	updateFn func(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error)
	deleteFn func(ctx context.Context, userID int64, id string) error
}

func (m *mockCredentialService) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCredentialService) Create(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error) {
	return m.createFn(ctx, userID, draft)
}

func (m *mockCredentialService) Update(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
	return m.updateFn(ctx, userID, id, patch)
}

func (m *mockCredentialService) Delete(ctx context.Context, userID int64, id string) error {
	return m.deleteFn(ctx, userID, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithCredentials(t *testing.T, creds service.CredentialService) *Handler {
	t.Helper()
	svcs := &service.Services{
		CredentialService: creds,
	}
	return NewHandler(svcs, logger.Nop())
}

// authedRequest builds a request whose context already carries the user ID,
// as the auth middleware would have left it.
func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam injects a chi route parameter into the request context so the
// handler can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listCredentials
// ─────────────────────────────────────────────

func TestListCredentials_Success(t *testing.T) {
	records := []models.Credential{
		{ID: testCredentialID, Machine: "alpha", Service: "ssh"},
	}
	creds := &mockCredentialService{
		listFn: func(_ context.Context, userID int64) ([]models.Credential, error) {
			assert.Equal(t, int64(42), userID)
			return records, nil
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodGet, "/api/credentials", "", 42)
	rec := httptest.NewRecorder()

	h.listCredentials(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.Credential
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Machine)
}

// TestListCredentials_EmptyVault verifies an empty vault serialises as []
// rather than null.
func TestListCredentials_EmptyVault(t *testing.T) {
	creds := &mockCredentialService{
		listFn: func(_ context.Context, _ int64) ([]models.Credential, error) {
			return nil, nil
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodGet, "/api/credentials", "", 42)
	rec := httptest.NewRecorder()

	h.listCredentials(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListCredentials_NoUserInContext(t *testing.T) {
	h := newHandlerWithCredentials(t, &mockCredentialService{})

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	rec := httptest.NewRecorder()

	h.listCredentials(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// createCredential
// ─────────────────────────────────────────────

func TestCreateCredential_Success(t *testing.T) {
	creds := &mockCredentialService{
		createFn: func(_ context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "alpha", draft.Machine)
			return models.Credential{ID: testCredentialID, UserID: userID, Machine: draft.Machine, Service: draft.Service, Status: draft.Status}, nil
		},
	}
	h := newHandlerWithCredentials(t, creds)

	body := `{"machine":"alpha","service":"ssh","status":"Local"}`
	req := authedRequest(http.MethodPost, "/api/credentials", body, 42)
	rec := httptest.NewRecorder()

	h.createCredential(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got models.Credential
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testCredentialID, got.ID)
}

func TestCreateCredential_MissingRequiredField(t *testing.T) {
	creds := &mockCredentialService{
		createFn: func(_ context.Context, _ int64, _ models.CredentialDraft) (models.Credential, error) {
			return models.Credential{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodPost, "/api/credentials", `{"service":"ssh"}`, 42)
	rec := httptest.NewRecorder()

	h.createCredential(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCredential_InvalidJSON(t *testing.T) {
	h := newHandlerWithCredentials(t, &mockCredentialService{})

	req := authedRequest(http.MethodPost, "/api/credentials", "{", 42)
	rec := httptest.NewRecorder()

	h.createCredential(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updateCredential
// ─────────────────────────────────────────────

func TestUpdateCredential_Success(t *testing.T) {
	creds := &mockCredentialService{
		updateFn: func(_ context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, testCredentialID, id)
			require.NotNil(t, patch.Person)
			return models.Credential{ID: id, Person: *patch.Person}, nil
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodPatch, "/api/credentials/"+testCredentialID, `{"person":"Bob"}`, 42)
	req = withURLParam(req, "id", testCredentialID)
	rec := httptest.NewRecorder()

	h.updateCredential(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Credential
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Bob", got.Person)
}

func TestUpdateCredential_MalformedID(t *testing.T) {
	h := newHandlerWithCredentials(t, &mockCredentialService{})

	req := authedRequest(http.MethodPatch, "/api/credentials/not-a-uuid", `{"person":"Bob"}`, 42)
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.updateCredential(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCredential_NotFound(t *testing.T) {
	creds := &mockCredentialService{
		updateFn: func(_ context.Context, _ int64, _ string, _ models.CredentialPatch) (models.Credential, error) {
			return models.Credential{}, store.ErrCredentialNotFound
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodPatch, "/api/credentials/"+testCredentialID, `{"person":"Bob"}`, 42)
	req = withURLParam(req, "id", testCredentialID)
	rec := httptest.NewRecorder()

	h.updateCredential(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteCredential
// ─────────────────────────────────────────────

func TestDeleteCredential_Success(t *testing.T) {
	creds := &mockCredentialService{
		deleteFn: func(_ context.Context, userID int64, id string) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, testCredentialID, id)
			return nil
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodDelete, "/api/credentials/"+testCredentialID, "", 42)
	req = withURLParam(req, "id", testCredentialID)
	rec := httptest.NewRecorder()

	h.deleteCredential(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteCredential_NotFound(t *testing.T) {
	creds := &mockCredentialService{
		deleteFn: func(_ context.Context, _ int64, _ string) error {
			return store.ErrCredentialNotFound
		},
	}
	h := newHandlerWithCredentials(t, creds)

	req := authedRequest(http.MethodDelete, "/api/credentials/"+testCredentialID, "", 42)
	req = withURLParam(req, "id", testCredentialID)
	rec := httptest.NewRecorder()

	h.deleteCredential(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
