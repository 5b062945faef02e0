package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog_backend/internal/feature/posts/domain/entity"
)

// mockPostRepository is a mock implementation of the PostRepository
// interface.
type mockPostRepository struct {
	CreateFunc         func(post *entity.Post) error
	FindByIDFunc       func(id uint) (*entity.Post, error)
	ListFunc           func() ([]entity.Post, error)
	ListByAuthorFunc   func(authorID uint) ([]entity.Post, error)
	ListByUsernameFunc func(username string) ([]entity.Post, error)
	DisableFunc        func(id uint) (*entity.Post, error)
	DeleteFunc         func(id uint) error
}

func (m *mockPostRepository) Create(_ context.Context, post *entity.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(post)
	}
	return nil
}

func (m *mockPostRepository) FindByID(_ context.Context, id uint) (*entity.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, ErrPostNotFound
}

func (m *mockPostRepository) List(_ context.Context) ([]entity.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockPostRepository) ListByAuthor(_ context.Context, authorID uint) ([]entity.Post, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(authorID)
	}
	return nil, nil
}

func (m *mockPostRepository) ListByUsername(_ context.Context, username string) ([]entity.Post, error) {
	if m.ListByUsernameFunc != nil {
		return m.ListByUsernameFunc(username)
	}
	return nil, nil
}

func (m *mockPostRepository) Disable(_ context.Context, id uint) (*entity.Post, error) {
	if m.DisableFunc != nil {
		return m.DisableFunc(id)
	}
	return nil, ErrPostNotFound
}

func (m *mockPostRepository) Delete(_ context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return ErrPostNotFound
}

func TestPostUsecase_Create(t *testing.T) {
	t.Run("stamps the creation time and passes through", func(t *testing.T) {
		mockRepo := &mockPostRepository{
			CreateFunc: func(post *entity.Post) error {
				if post.AuthorID != 7 {
					t.Errorf("expected author 7, got %d", post.AuthorID)
				}
				if post.Disabled {
					t.Error("new post must be active")
				}
				if _, err := time.Parse(time.RFC3339, post.CreatedAt); err != nil {
					t.Errorf("CreatedAt not RFC 3339: %q", post.CreatedAt)
				}
				post.ID = 1
				return nil
			},
		}

		uc := NewPostUsecase(mockRepo)
		post, err := uc.Create(context.Background(), 7, "hello")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.ID != 1 {
			t.Errorf("expected id from repository, got %d", post.ID)
		}
	})

	t.Run("dangling author propagates", func(t *testing.T) {
		mockRepo := &mockPostRepository{
			CreateFunc: func(*entity.Post) error { return ErrAuthorMissing },
		}

		uc := NewPostUsecase(mockRepo)
		_, err := uc.Create(context.Background(), 404, "orphan")

		if !errors.Is(err, ErrAuthorMissing) {
			t.Errorf("expected ErrAuthorMissing, got %v", err)
		}
	})
}

func TestPostUsecase_ListByUsername(t *testing.T) {
	var looked string
	mockRepo := &mockPostRepository{
		ListByUsernameFunc: func(username string) ([]entity.Post, error) {
			looked = username
			return nil, nil
		},
	}

	uc := NewPostUsecase(mockRepo)
	if _, err := uc.ListByUsername(context.Background(), " Alice "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if looked != "alice" {
		t.Errorf("expected lookup on 'alice', got %q", looked)
	}
}
