package usecase

import (
	"context"
	"strings"
	"time"

	"blog_backend/internal/feature/posts/domain/entity"
)

// PostRepository abstracts the persistence layer for post entities.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type PostRepository interface {
	// Create inserts a new post. A dangling author reference fails with
	// ErrAuthorMissing.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post only if both it and its owning author
	// are active; otherwise ErrPostNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// List returns every visible post in insertion order.
	List(ctx context.Context) ([]entity.Post, error)

	// ListByAuthor returns the visible posts owned by the author.
	ListByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error)

	// ListByUsername returns the visible posts owned by the author with
	// the given (lower-cased) username.
	ListByUsername(ctx context.Context, username string) ([]entity.Post, error)

	// Disable soft-deletes a visible post; ErrPostNotFound otherwise.
	Disable(ctx context.Context, id uint) (*entity.Post, error)

	// Delete removes a visible post row for good. ErrHasReplies when
	// replies still reference it.
	Delete(ctx context.Context, id uint) error
}

// PostUsecase provides creation, lookup and removal of posts.
type PostUsecase struct {
	posts PostRepository
}

// NewPostUsecase creates a new PostUsecase with the given repository.
func NewPostUsecase(posts PostRepository) *PostUsecase {
	return &PostUsecase{posts: posts}
}

// Create publishes a new post for the given author. The author is not
// required to be active, or even checked here: the store's foreign key
// is the only referee, so a disabled author can still be written against
// and the post simply stays invisible through the read-side joins.
func (u *PostUsecase) Create(ctx context.Context, authorID uint, content string) (*entity.Post, error) {
	post := &entity.Post{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get returns the visible post with the given ID.
func (u *PostUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// List returns all visible posts.
func (u *PostUsecase) List(ctx context.Context) ([]entity.Post, error) {
	return u.posts.List(ctx)
}

// ListByAuthor returns the visible posts of one author.
func (u *PostUsecase) ListByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error) {
	return u.posts.ListByAuthor(ctx, authorID)
}

// ListByUsername returns the visible posts of the author with the given
// username. The username is lower-cased to match the stored form.
func (u *PostUsecase) ListByUsername(ctx context.Context, username string) ([]entity.Post, error) {
	return u.posts.ListByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
}

// Disable soft-deletes a post. Re-disabling an already-disabled post, or
// disabling one whose author is gone, reports not found.
func (u *PostUsecase) Disable(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.Disable(ctx, id)
}

// Delete removes a post row permanently. Unlike Disable this frees the
// identifier, but only when no reply references the post.
func (u *PostUsecase) Delete(ctx context.Context, id uint) error {
	return u.posts.Delete(ctx, id)
}
