package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/authors/domain/entity"
)

// AuthorRepository abstracts the persistence layer for author entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AuthorRepository interface {
	// Create persists a new author. It returns ErrUsernameTaken or
	// ErrEmailTaken if a unique index rejected the row.
	Create(ctx context.Context, author *entity.Author) error

	// FindByID returns the active author with the given ID, or
	// ErrAuthorNotFound if it is absent or disabled.
	FindByID(ctx context.Context, id uint) (*entity.Author, error)

	// FindByIdentifier matches the identifier against username or email
	// among active authors.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Author, error)

	// List returns authors in insertion order. With activeOnly false it
	// includes disabled rows (administrative listing).
	List(ctx context.Context, activeOnly bool) ([]entity.Author, error)

	// UsernameExists reports whether any author, disabled or not, holds
	// the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether any author, disabled or not, holds
	// the email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Update persists the full author row. Unique index violations map
	// to ErrUsernameTaken / ErrEmailTaken.
	Update(ctx context.Context, author *entity.Author) error

	// Disable flips an active author to disabled and returns the row.
	// Absent or already-disabled authors yield ErrAuthorNotFound.
	Disable(ctx context.Context, id uint) (*entity.Author, error)
}

// AuthorPatch is a partial update for an author. A nil field is left
// untouched. FullName is applied only when FullNameSet is true, so an
// explicit null can clear it.
type AuthorPatch struct {
	Username    *string
	Email       *string
	Password    *string
	FullName    *string
	FullNameSet bool
}

// AuthorUsecase provides registration, lookup, partial update and
// soft-delete for authors, enforcing identity uniqueness.
type AuthorUsecase struct {
	authors AuthorRepository
}

// NewAuthorUsecase creates a new AuthorUsecase with the given repository.
func NewAuthorUsecase(authors AuthorRepository) *AuthorUsecase {
	return &AuthorUsecase{authors: authors}
}

// NormalizeUsername trims surrounding whitespace and lower-cases the
// username. Applied before every uniqueness check and every write so the
// stored form and the compared form never diverge.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// checkIdentity verifies that neither the username nor, when non-empty,
// the email is held by any existing author. Disabled authors count:
// identity is global and permanent.
func (u *AuthorUsecase) checkIdentity(ctx context.Context, username, email string) error {
	taken, err := u.authors.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}
	if email != "" {
		taken, err = u.authors.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
	}
	return nil
}

// Register creates a new active author. The username is normalized, the
// password is stored as a bcrypt hash, and RegisteredAt is stamped once.
func (u *AuthorUsecase) Register(ctx context.Context, username, email, password string, fullName *string) (*entity.Author, error) {
	username = NormalizeUsername(username)
	if err := u.checkIdentity(ctx, username, email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	author := &entity.Author{
		Username:     username,
		Email:        email,
		Password:     string(hashed),
		FullName:     fullName,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	}
	// The unique indexes are the backstop for the check-then-insert race:
	// a concurrent registration that slips past checkIdentity still fails
	// in Create with the same sentinel errors.
	if err := u.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Get returns the active author with the given ID.
func (u *AuthorUsecase) Get(ctx context.Context, id uint) (*entity.Author, error) {
	return u.authors.FindByID(ctx, id)
}

// GetByIdentifier looks up an active author by username or email. The
// identifier is lower-cased before matching; uniqueness guarantees at
// most one hit.
func (u *AuthorUsecase) GetByIdentifier(ctx context.Context, identifier string) (*entity.Author, error) {
	return u.authors.FindByIdentifier(ctx, strings.ToLower(strings.TrimSpace(identifier)))
}

// List returns all active authors, or every author when activeOnly is
// false.
func (u *AuthorUsecase) List(ctx context.Context, activeOnly bool) ([]entity.Author, error) {
	return u.authors.List(ctx, activeOnly)
}

// Update applies a partial update to an active author. Only fields
// present in the patch are touched. A username change re-runs the
// uniqueness check; a new password is re-hashed.
func (u *AuthorUsecase) Update(ctx context.Context, id uint, patch AuthorPatch) (*entity.Author, error) {
	author, err := u.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		username := NormalizeUsername(*patch.Username)
		if username != author.Username {
			taken, err := u.authors.UsernameExists(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("check username: %w", err)
			}
			if taken {
				return nil, ErrUsernameTaken
			}
			author.Username = username
		}
	}
	if patch.Email != nil {
		author.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		author.Password = string(hashed)
	}
	if patch.FullNameSet {
		author.FullName = patch.FullName
	}

	if err := u.authors.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Disable soft-deletes an author. The transition is one-way: there is no
// operation that re-enables a disabled author. Posts and replies owned by
// the author keep their own disabled flag untouched and simply drop out
// of visibility through the read-side joins.
func (u *AuthorUsecase) Disable(ctx context.Context, id uint) (*entity.Author, error) {
	return u.authors.Disable(ctx, id)
}
