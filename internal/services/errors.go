package services

import "errors"

// Error variables shared across services.
var (
	// ErrNotFound covers both a genuinely missing resource and one owned by
	// another identity; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)
