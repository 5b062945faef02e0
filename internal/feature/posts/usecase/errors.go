// Package usecase implements the business logic for the posts feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no visible post matches the given
	// ID. A post is visible only while both it and its owning author are
	// active.
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorMissing is returned when a write references an author ID
	// with no row behind it (foreign-key violation).
	ErrAuthorMissing = errors.New("referenced author does not exist")

	// ErrHasReplies is returned when a hard delete is rejected because
	// replies still reference the post.
	ErrHasReplies = errors.New("post still has replies")
)
