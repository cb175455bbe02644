package service

import (
	"errors"

	"github.com/azgeda96/secure-pass-vault/internal/adapter"
	"github.com/azgeda96/secure-pass-vault/internal/app"
	"github.com/azgeda96/secure-pass-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongCredentials
	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailAlreadyTaken
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrCredentialNotFound
	}

	return err
}

// AuthErrorMessage renders an authentication failure for display. The two
// known rejections and the local validation errors get localized wording;
// anything else is shown verbatim.
func AuthErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrWrongCredentials):
		return app.UIWrongCredentials
	case errors.Is(err, ErrEmailAlreadyTaken):
		return app.UIEmailAlreadyTaken
	case errors.Is(err, ErrInvalidEmail):
		return app.UIInvalidEmail
	case errors.Is(err, ErrPasswordTooShort):
		return app.UIPasswordTooShort
	}

	return err.Error()
}
