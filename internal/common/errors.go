// Package common defines shared constants and sentinel errors used across
// the NoFlow Engine server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Session errors (invalid, tampered, or expired cookie).
	ErrInvalidSession = errors.New("invalid session")
)
