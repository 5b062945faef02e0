package dto

import "blog_backend/internal/feature/authors/domain/entity"

// AuthorResponse is the public representation of an author. The password
// hash never leaves the service.
type AuthorResponse struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FullName     *string `json:"full_name,omitempty"`
	Disabled     bool    `json:"disabled"`
	RegisteredAt string  `json:"registered_at"`
}

// NewAuthorResponse converts an author entity into its public form.
func NewAuthorResponse(a *entity.Author) AuthorResponse {
	return AuthorResponse{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		FullName:     a.FullName,
		Disabled:     a.Disabled,
		RegisteredAt: a.RegisteredAt,
	}
}
