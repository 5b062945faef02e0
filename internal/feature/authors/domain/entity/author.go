// Package entity defines the domain entities for the authors feature.
package entity

// Author represents a registered participant who owns posts and replies.
type Author struct {
	// ID is the unique identifier for the author.
	ID uint `gorm:"primaryKey"`

	// Username is the author's handle, stored lower-cased.
	// It must be unique across all authors, disabled ones included.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// Email must be unique across all authors, disabled ones included.
	// It is stored and compared exactly as given.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password holds the bcrypt hash of the author's password.
	Password string `gorm:"size:255;not null"`

	// FullName is the author's display name. Optional.
	FullName *string `gorm:"size:100"`

	// Disabled marks the author as soft-deleted. Once set it is never
	// cleared; reads treat disabled authors as absent.
	Disabled bool `gorm:"not null;default:false;index"`

	// RegisteredAt is the creation timestamp in RFC 3339 UTC. Immutable.
	RegisteredAt string `gorm:"size:40;not null"`
}
