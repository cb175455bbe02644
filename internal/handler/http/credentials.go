package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/azgeda96/secure-pass-vault/internal/app"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/utils"
	"github.com/azgeda96/secure-pass-vault/models"
)

// listCredentials returns all records of the authenticated user, ordered by
// machine name ascending. An empty vault is an empty JSON array, not null.
func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	credentials, err := h.services.CredentialService.List(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("listing credentials failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if credentials == nil {
		credentials = []models.Credential{}
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

// createCredential stores a new record for the authenticated user and returns
// it with the store-assigned id and timestamps.
func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.CredentialDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.CredentialService.Create(ctx, userID, draft)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("creating credential failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateCredential applies a partial patch to one record of the authenticated
// user and returns the updated record.
func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Err(err).Str("id", id).Msg("invalid credential id")
		http.Error(w, "invalid credential id", http.StatusBadRequest)
		return
	}

	var patch models.CredentialPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.CredentialService.Update(ctx, userID, id, patch)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("id", id).Msg("updating credential failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteCredential removes one record of the authenticated user. Deleting a
// record that does not exist (or belongs to someone else) yields 404.
func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Err(err).Str("id", id).Msg("invalid credential id")
		http.Error(w, "invalid credential id", http.StatusBadRequest)
		return
	}

	if err := h.services.CredentialService.Delete(ctx, userID, id); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("id", id).Msg("deleting credential failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
