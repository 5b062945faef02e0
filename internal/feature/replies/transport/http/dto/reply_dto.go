// Package dto defines data transfer objects for the replies feature's
// HTTP transport layer.
package dto

import "blog_backend/internal/feature/replies/domain/entity"

// CreateReplyReq represents the request body for POST /replies.
type CreateReplyReq struct {
	AuthorID uint   `json:"author_id" binding:"required"`
	PostID   uint   `json:"post_id" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=420"`
}

// ReplyResponse is the public representation of a reply.
type ReplyResponse struct {
	ID        uint   `json:"id"`
	PostID    uint   `json:"post_id"`
	AuthorID  uint   `json:"author_id"`
	Content   string `json:"content"`
	Disabled  bool   `json:"disabled"`
	CreatedAt string `json:"created_at"`
}

// NewReplyResponse converts a reply entity into its public form.
func NewReplyResponse(r *entity.Reply) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		PostID:    r.PostID,
		AuthorID:  r.AuthorID,
		Content:   r.Content,
		Disabled:  r.Disabled,
		CreatedAt: r.CreatedAt,
	}
}
