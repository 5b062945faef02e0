// Package usecase implements the business logic for the replies feature.
package usecase

import "errors"

var (
	// ErrReplyNotFound is returned when no active reply matches the
	// given ID, including replies that were already disabled.
	ErrReplyNotFound = errors.New("reply not found")

	// ErrPostMissing is returned when a write references a post ID with
	// no row behind it (foreign-key violation).
	ErrPostMissing = errors.New("referenced post does not exist")

	// ErrAuthorMissing is returned when a write references an author ID
	// with no row behind it (foreign-key violation).
	ErrAuthorMissing = errors.New("referenced author does not exist")
)
