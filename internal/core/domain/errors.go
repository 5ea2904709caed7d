package domain

import "errors"

var (
	// ErrEmailTaken is returned when signup is attempted with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound is returned by the account directory on a miss.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthenticated is returned when a request carries no usable
	// bearer token.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoteNotOwned is returned when an update or delete matched no
	// document. It deliberately conflates "no such note" with "not your
	// note" so that non-owners learn nothing about a note's existence.
	ErrNoteNotOwned = errors.New("note not found or not owned")
)

// Token verification failures.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
