package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors. The auth gate rejects all three the same way;
	// the distinction exists for diagnostics.
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature invalid")

	// Session transport
	ErrNoCredential = errors.New("no session credential")

	// Companion data errors
	ErrReminderNotFound = errors.New("reminder not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
