package usecases

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Ownership failures
// surface as ErrNotFound so other users' resources are never disclosed.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
