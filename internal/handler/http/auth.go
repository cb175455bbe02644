package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/azgeda96/secure-pass-vault/internal/app"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/store"
	"github.com/azgeda96/secure-pass-vault/models"
)

// register creates a new account and, on success, issues a JWT in the
// "Authorization" response header. A taken email yields 409 Conflict.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		status := statusFromError(err)
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", user.Email).Msg("email already registered")
			http.Error(w, app.MsgEmailAlreadyRegistered, status)
			return
		}
		log.Err(err).Msg("user registration failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

// login authenticates an existing account and issues a JWT the same way
// register does. An unknown email and a wrong password both yield 401 so the
// response does not reveal which one was wrong.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Err(err).Str("email", user.Email).Msg("login rejected")
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("user login failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
