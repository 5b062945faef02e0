// Package adapters provides the repository implementations for the
// replies feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	postentity "blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/replies/domain/entity"
	"blog_backend/internal/feature/replies/usecase"
)

// replyRepository is the GORM implementation of the ReplyRepository
// interface.
type replyRepository struct {
	db *gorm.DB
}

var _ usecase.ReplyRepository = (*replyRepository)(nil)

// NewReplyRepository creates a new reply repository on the given gorm.DB
// connection. Constructor for dependency injection.
func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{db: db}
}

// Create inserts a new reply row. A foreign-key violation does not say
// which reference broke, so the post is re-probed to name the missing
// side.
func (r *replyRepository) Create(ctx context.Context, reply *entity.Reply) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(reply).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			var n int64
			if probeErr := r.db.WithContext(ctx).
				Model(&postentity.Post{}).
				Where("id = ?", reply.PostID).
				Count(&n).Error; probeErr == nil && n == 0 {
				return usecase.ErrPostMissing
			}
			return usecase.ErrAuthorMissing
		}
		return err
	}
	return nil
}

// ListByPost returns the replies to a post that are fully visible: the
// reply itself, its author and the post it belongs to are all active.
func (r *replyRepository) ListByPost(ctx context.Context, postID uint) ([]entity.Reply, error) {
	var replies []entity.Reply
	if err := r.db.WithContext(ctx).
		Model(&entity.Reply{}).
		Joins("JOIN posts ON posts.id = replies.post_id").
		Joins("JOIN authors ON authors.id = replies.author_id").
		Where("replies.post_id = ?", postID).
		Where("replies.disabled = ? AND posts.disabled = ? AND authors.disabled = ?", false, false, false).
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// Disable marks an active reply as disabled and returns the updated row.
// Only the reply's own flag gates the write: a reply under a disabled
// post can still be removed by its author.
func (r *replyRepository) Disable(ctx context.Context, id uint) (*entity.Reply, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Reply{}).
		Where("id = ? AND disabled = ?", id, false).
		Update("disabled", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrReplyNotFound
	}

	var reply entity.Reply
	if err := r.db.WithContext(ctx).First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}
