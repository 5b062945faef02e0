// Package adapters provides the repository implementations for the posts
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
)

// postRepository is the GORM implementation of the PostRepository
// interface. The visibility rule (a post is readable only while both it
// and its owning author are active) lives in the join every read method
// shares.
type postRepository struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postRepository)(nil)

// NewPostRepository creates a new post repository on the given gorm.DB
// connection. Constructor for dependency injection.
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db: db}
}

// visible scopes a query to posts whose own flag and owning author's
// flag are both clear.
func (r *postRepository) visible(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entity.Post{}).
		Joins("JOIN authors ON authors.id = posts.author_id").
		Where("posts.disabled = ? AND authors.disabled = ?", false, false)
}

// Create inserts a new post row. Associations are never written through
// the entity's constraint field.
func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return usecase.ErrAuthorMissing
		}
		return err
	}
	return nil
}

// FindByID returns the visible post with the given ID.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.visible(ctx).
		Where("posts.id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns every visible post in primary-key order.
func (r *postRepository) List(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.visible(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor returns the visible posts owned by the author.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.visible(ctx).
		Where("posts.author_id = ?", authorID).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByUsername returns the visible posts owned by the author with the
// given username. Callers lower-case the username to match the stored
// form.
func (r *postRepository) ListByUsername(ctx context.Context, username string) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.visible(ctx).
		Where("authors.username = ?", username).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Disable marks a visible post as disabled and returns the updated row.
// The visibility lookup doubles as the already-disabled guard.
func (r *postRepository) Disable(ctx context.Context, id uint) (*entity.Post, error) {
	post, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Model(&entity.Post{}).
		Where("id = ? AND disabled = ?", id, false).
		Update("disabled", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrPostNotFound
	}

	post.Disabled = true
	return post, nil
}

// Delete removes a visible post row permanently. Replies keep a foreign
// key on posts, so the store rejects the delete while any remain.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Delete(&entity.Post{}, id).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return usecase.ErrHasReplies
		}
		return err
	}
	return nil
}
