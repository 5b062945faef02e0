// Package entity defines the domain entities for the replies feature.
package entity

import (
	authorentity "blog_backend/internal/feature/authors/domain/entity"
	postentity "blog_backend/internal/feature/posts/domain/entity"
)

// Reply represents a response to a post.
type Reply struct {
	// ID is the unique identifier for the reply.
	ID uint `gorm:"primaryKey"`

	// PostID references the post being replied to.
	PostID uint `gorm:"not null;index"`

	// Post carries the foreign-key constraint for migration. It is never
	// written through this field.
	Post *postentity.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// AuthorID references the author of the reply.
	AuthorID uint `gorm:"not null;index"`

	// Author carries the foreign-key constraint for migration.
	Author *authorentity.Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// Content is the reply body, 1 to 420 code points.
	Content string `gorm:"size:420;not null"`

	// Disabled marks the reply as soft-deleted.
	Disabled bool `gorm:"not null;default:false;index"`

	// CreatedAt is the creation timestamp in RFC 3339 UTC. Immutable.
	CreatedAt string `gorm:"size:40;not null"`
}
