package models

import "time"

// User represents an account entity used for authentication.
// A user owns a set of credential records; records belonging to different
// users are never visible to each other.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Not exposed via JSON; used at the persistence layer and in JWT claims.
	UserID int64 `json:"-"`

	// Email is the unique account identifier used to sign in.
	Email string `json:"email"`

	// Password carries the plain-text password of a sign-in/sign-up
	// request. It is never persisted: the server stores only PasswordHash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
