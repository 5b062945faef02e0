// Package adapters provides the repository implementations for the
// authors feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/authors/domain/entity"
	"blog_backend/internal/feature/authors/usecase"
)

// authorRepository is the GORM implementation of the AuthorRepository
// interface. It works against any of the configured SQL drivers; error
// translation (TranslateError) turns driver-specific constraint failures
// into gorm.ErrDuplicatedKey.
type authorRepository struct {
	db *gorm.DB
}

var _ usecase.AuthorRepository = (*authorRepository)(nil)

// NewAuthorRepository creates a new author repository on the given
// gorm.DB connection. Constructor for dependency injection.
func NewAuthorRepository(db *gorm.DB) *authorRepository {
	return &authorRepository{db: db}
}

// dupError maps a unique-index violation to the sentinel naming the
// colliding field. The index itself does not say which column fired, so
// the row is re-probed by username first, matching the order the
// identity check runs in.
func (r *authorRepository) dupError(ctx context.Context, author *entity.Author) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Author{}).
		Where("username = ? AND id <> ?", author.Username, author.ID).
		Count(&n).Error; err == nil && n > 0 {
		return usecase.ErrUsernameTaken
	}
	return usecase.ErrEmailTaken
}

// Create inserts a new author row.
func (r *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.dupError(ctx, author)
		}
		return err
	}
	return nil
}

// FindByID returns the active author with the given ID.
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	var author entity.Author
	if err := r.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", id, false).
		First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// FindByIdentifier returns the active author whose username or email
// equals the identifier. Callers lower-case the identifier; usernames
// are stored lower-cased, emails are matched byte-for-byte.
func (r *authorRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Author, error) {
	var author entity.Author
	if err := r.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND disabled = ?", identifier, identifier, false).
		First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// List returns authors in primary-key order. activeOnly false is the
// administrative listing that includes disabled rows.
func (r *authorRepository) List(ctx context.Context, activeOnly bool) ([]entity.Author, error) {
	var authors []entity.Author
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("disabled = ?", false)
	}
	if err := q.Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// UsernameExists checks the username against every row, disabled
// included. Identity is global and permanent.
func (r *authorRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Author{}).
		Where("username = ?", username).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// EmailExists checks the email against every row, disabled included.
func (r *authorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Author{}).
		Where("email = ?", email).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Update writes the full author row back.
func (r *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	if err := r.db.WithContext(ctx).Save(author).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.dupError(ctx, author)
		}
		return err
	}
	return nil
}

// Disable marks an active author as disabled and returns the updated
// row. The WHERE clause on disabled makes the transition one-way: a
// second call affects zero rows and reports not found.
func (r *authorRepository) Disable(ctx context.Context, id uint) (*entity.Author, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Author{}).
		Where("id = ? AND disabled = ?", id, false).
		Update("disabled", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrAuthorNotFound
	}

	var author entity.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
