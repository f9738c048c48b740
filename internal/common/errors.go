// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrPersistence = errors.New("persistence error")
	ErrHashing     = errors.New("password hashing failed")

	// Credential validation errors.
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be 6-8 chars with uppercase, lowercase, and number")

	// Registration / login errors.
	ErrEmailTaken         = errors.New("email is already registered")
	ErrAccountNotFound    = errors.New("no user found")
	ErrInvalidCredentials = errors.New("incorrect password")

	// Token errors.
	ErrTokenMissing      = errors.New("missing token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrMissingSigningKey = errors.New("token signing key is not configured")

	// Secret errors.
	ErrEmptySecret = errors.New("secret is empty")
)
