// Package entity defines the domain entities for the posts feature.
package entity

import (
	authorentity "blog_backend/internal/feature/authors/domain/entity"
)

// Post represents a piece of content published by an author.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey"`

	// AuthorID references the owning author. The foreign key is
	// enforced by the store; creation does not check that the author
	// is still active.
	AuthorID uint `gorm:"not null;index"`

	// Author carries the foreign-key constraint for migration. It is
	// never written through this field.
	Author *authorentity.Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// Content is the post body, 1 to 420 code points. Length is
	// validated at the transport boundary.
	Content string `gorm:"size:420;not null"`

	// Disabled marks the post as soft-deleted.
	Disabled bool `gorm:"not null;default:false;index"`

	// CreatedAt is the creation timestamp in RFC 3339 UTC. Immutable.
	CreatedAt string `gorm:"size:40;not null"`
}
