// Package usecase implements the business logic for the authors feature.
package usecase

import "errors"

var (
	// ErrAuthorNotFound is returned when no active author matches the
	// given ID or identifier. Disabled authors are indistinguishable
	// from absent ones.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrUsernameTaken is returned when the requested username already
	// belongs to another author, disabled or not.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the requested email already
	// belongs to another author, disabled or not.
	ErrEmailTaken = errors.New("email already taken")
)
