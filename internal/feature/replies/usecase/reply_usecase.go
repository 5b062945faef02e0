package usecase

import (
	"context"
	"time"

	"blog_backend/internal/feature/replies/domain/entity"
)

// ReplyRepository abstracts the persistence layer for reply entities.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type ReplyRepository interface {
	// Create inserts a new reply. Dangling references fail with
	// ErrPostMissing or ErrAuthorMissing.
	Create(ctx context.Context, reply *entity.Reply) error

	// ListByPost returns the visible replies to a post: the reply, its
	// author and its post must all be active.
	ListByPost(ctx context.Context, postID uint) ([]entity.Reply, error)

	// Disable soft-deletes an active reply; an absent or already
	// disabled reply yields ErrReplyNotFound.
	Disable(ctx context.Context, id uint) (*entity.Reply, error)
}

// ReplyUsecase provides creation, listing and removal of replies.
type ReplyUsecase struct {
	replies ReplyRepository
}

// NewReplyUsecase creates a new ReplyUsecase with the given repository.
func NewReplyUsecase(replies ReplyRepository) *ReplyUsecase {
	return &ReplyUsecase{replies: replies}
}

// Create records a reply to a post. Both references are enforced by the
// store's foreign keys only; neither the post nor the author needs to be
// active for the write to succeed.
func (u *ReplyUsecase) Create(ctx context.Context, authorID, postID uint, content string) (*entity.Reply, error) {
	reply := &entity.Reply{
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := u.replies.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ListByPost returns the visible replies to the given post.
func (u *ReplyUsecase) ListByPost(ctx context.Context, postID uint) ([]entity.Reply, error) {
	return u.replies.ListByPost(ctx, postID)
}

// Disable removes a reply from view. Disabling twice reports not found,
// the same as a reply that never existed.
func (u *ReplyUsecase) Disable(ctx context.Context, id uint) (*entity.Reply, error) {
	return u.replies.Disable(ctx, id)
}
