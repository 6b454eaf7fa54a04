// Package common defines shared sentinel errors used across TaskHub
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Authentication errors.
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Authorization errors.
	ErrNotOwner = errors.New("not owner")

	// Infrastructure failures (unreachable database, unwritable file path).
	ErrInternal = errors.New("internal error")
)
