package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authoradapters "blog_backend/internal/feature/authors/adapters"
	authorentity "blog_backend/internal/feature/authors/domain/entity"
	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
	replyentity "blog_backend/internal/feature/replies/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the full
// schema, foreign keys enabled.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// A second pool connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&authorentity.Author{}, &entity.Post{}, &replyentity.Reply{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedAuthor inserts an active author and returns it.
func seedAuthor(t *testing.T, db *gorm.DB, username string) *authorentity.Author {
	t.Helper()

	author := &authorentity.Author{
		Username:     username,
		Email:        username + "@example.com",
		Password:     "hashed_password",
		RegisteredAt: "2026-01-01T00:00:00Z",
	}
	require.NoError(t, authoradapters.NewAuthorRepository(db).Create(context.Background(), author))
	return author
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, content string) *entity.Post {
	t.Helper()

	post := &entity.Post{AuthorID: authorID, Content: content, CreatedAt: "2026-01-02T00:00:00Z"}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))
	return post
}

func disableAuthor(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()

	res := db.Model(&authorentity.Author{}).Where("id = ?", id).Update("disabled", true)
	require.NoError(t, res.Error)
	require.EqualValues(t, 1, res.RowsAffected)
}

func TestPostRepository_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db := setupTestDB(t)
		author := seedAuthor(t, db, "alice")

		post := seedPost(t, db, author.ID, "hello")
		assert.NotZero(t, post.ID)
		assert.False(t, post.Disabled)
	})

	t.Run("dangling author reference fails and inserts nothing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)

		post := &entity.Post{AuthorID: 42, Content: "orphan", CreatedAt: "2026-01-02T00:00:00Z"}
		err := repo.Create(context.Background(), post)
		assert.ErrorIs(t, err, usecase.ErrAuthorMissing)

		var n int64
		require.NoError(t, db.Model(&entity.Post{}).Count(&n).Error)
		assert.Zero(t, n, "no row may remain after a rejected insert")
	})

	t.Run("disabled author can still be posted against", func(t *testing.T) {
		// Creation is foreign-key-only; liveness is a read-side concern.
		db := setupTestDB(t)
		author := seedAuthor(t, db, "alice")
		disableAuthor(t, db, author.ID)

		post := seedPost(t, db, author.ID, "into the void")
		assert.NotZero(t, post.ID)
	})
}

func TestPostRepository_Visibility(t *testing.T) {
	t.Run("disabled post is hidden", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)
		author := seedAuthor(t, db, "alice")
		post := seedPost(t, db, author.ID, "soon gone")

		_, err := repo.Disable(context.Background(), post.ID)
		require.NoError(t, err)

		_, err = repo.FindByID(context.Background(), post.ID)
		assert.ErrorIs(t, err, usecase.ErrPostNotFound)

		posts, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("post of a disabled author is hidden though its row survives", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)
		author := seedAuthor(t, db, "alice")
		post := seedPost(t, db, author.ID, "hi")

		disableAuthor(t, db, author.ID)

		_, err := repo.FindByID(context.Background(), post.ID)
		assert.ErrorIs(t, err, usecase.ErrPostNotFound)

		posts, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, posts)

		// The row itself is untouched: only the join hides it.
		var raw entity.Post
		require.NoError(t, db.First(&raw, post.ID).Error)
		assert.False(t, raw.Disabled)
	})

	t.Run("listing filters per author", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)
		alice := seedAuthor(t, db, "alice")
		bob := seedAuthor(t, db, "bob")
		seedPost(t, db, alice.ID, "from alice")
		seedPost(t, db, bob.ID, "from bob")

		posts, err := repo.ListByAuthor(context.Background(), alice.ID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "from alice", posts[0].Content)

		posts, err = repo.ListByUsername(context.Background(), "bob")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "from bob", posts[0].Content)
	})

	t.Run("empty result is an empty list, not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)

		posts, err := repo.ListByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_Disable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := seedAuthor(t, db, "alice")
	post := seedPost(t, db, author.ID, "hello")

	t.Run("first disable succeeds", func(t *testing.T) {
		disabled, err := repo.Disable(context.Background(), post.ID)
		assert.NoError(t, err)
		assert.True(t, disabled.Disabled)
	})

	t.Run("second disable reports not found", func(t *testing.T) {
		_, err := repo.Disable(context.Background(), post.ID)
		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	t.Run("removes the row permanently", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)
		author := seedAuthor(t, db, "alice")
		post := seedPost(t, db, author.ID, "temporary")

		require.NoError(t, repo.Delete(context.Background(), post.ID))

		var n int64
		require.NoError(t, db.Model(&entity.Post{}).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("missing post reports not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)

		err := repo.Delete(context.Background(), 404)
		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})

	t.Run("post with replies is protected by the foreign key", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostRepository(db)
		author := seedAuthor(t, db, "alice")
		post := seedPost(t, db, author.ID, "discussed")

		reply := &replyentity.Reply{
			PostID:    post.ID,
			AuthorID:  author.ID,
			Content:   "me too",
			CreatedAt: "2026-01-03T00:00:00Z",
		}
		require.NoError(t, db.Create(reply).Error)

		err := repo.Delete(context.Background(), post.ID)
		assert.ErrorIs(t, err, usecase.ErrHasReplies)
	})
}
