// Package dto defines data transfer objects for the posts feature's HTTP
// transport layer.
package dto

import "blog_backend/internal/feature/posts/domain/entity"

// CreatePostReq represents the request body for POST /posts. Content is
// bounded to 420 code points; the min/max tags count runes, not bytes.
type CreatePostReq struct {
	AuthorID uint   `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=420"`
}

// PostResponse is the public representation of a post.
type PostResponse struct {
	ID        uint   `json:"id"`
	AuthorID  uint   `json:"author_id"`
	Content   string `json:"content"`
	Disabled  bool   `json:"disabled"`
	CreatedAt string `json:"created_at"`
}

// NewPostResponse converts a post entity into its public form.
func NewPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		Disabled:  p.Disabled,
		CreatedAt: p.CreatedAt,
	}
}
