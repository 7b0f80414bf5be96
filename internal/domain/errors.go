package domain

import "errors"

// Common domain errors returned by repositories. Usecases map these to
// transport-level errors.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyMember = errors.New("user id already present")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)
