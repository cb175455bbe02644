package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrInvalidEmail is returned when the email does not look like an
	// email address at all.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrPasswordTooShort is returned when the account password is below
	// the minimum length of 6 characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrNotAuthenticated is returned by client mutations attempted with no
	// active session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrWrongCredentials is the client-side form of a rejected sign-in;
	// it covers both an unknown email and a wrong password.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrEmailAlreadyTaken is the client-side form of a sign-up rejected
	// because the email is already registered.
	ErrEmailAlreadyTaken = errors.New("email already taken")
)
