// Package handler provides the HTTP handlers for the authors feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/authors/domain/entity"
	"blog_backend/internal/feature/authors/transport/http/dto"
	"blog_backend/internal/feature/authors/usecase"
)

// usernamePattern limits usernames to letters, digits and underscores.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// AuthorUsecase defines the author operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type AuthorUsecase interface {
	Register(ctx context.Context, username, email, password string, fullName *string) (*entity.Author, error)
	Get(ctx context.Context, id uint) (*entity.Author, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entity.Author, error)
	List(ctx context.Context, activeOnly bool) ([]entity.Author, error)
	Update(ctx context.Context, id uint, patch usecase.AuthorPatch) (*entity.Author, error)
	Disable(ctx context.Context, id uint) (*entity.Author, error)
}

// AuthorHandler handles HTTP requests for author operations.
type AuthorHandler struct {
	authors AuthorUsecase
}

// NewAuthorHandler creates a new AuthorHandler. Constructor for
// dependency injection.
func NewAuthorHandler(authors AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// parseID parses a positive numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// Create handles POST /authors.
// Returns 201 with the new author, 400 on validation failure, 409 when
// the username or email is already taken.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if !usernamePattern.MatchString(req.Username) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "username must contain only letters, digits and underscores"})
		return
	}

	author, err := h.authors.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken), errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("author registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	slog.Info("author registered", "id", author.ID, "username", author.Username)
	c.JSON(http.StatusCreated, dto.NewAuthorResponse(author))
}

// List handles GET /authors. The include_disabled=true query switches to
// the administrative listing that shows soft-deleted authors too.
func (h *AuthorHandler) List(c *gin.Context) {
	activeOnly := c.Query("include_disabled") != "true"
	authors, err := h.authors.List(c.Request.Context(), activeOnly)
	if err != nil {
		slog.Error("author listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, dto.NewAuthorResponse(&authors[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /authors/:id. A numeric parameter is treated as an ID;
// anything else falls back to a username-or-email lookup.
func (h *AuthorHandler) Get(c *gin.Context) {
	raw := c.Param("id")

	var (
		author *entity.Author
		err    error
	)
	if id, idErr := parseID(raw); idErr == nil {
		author, err = h.authors.Get(c.Request.Context(), id)
	} else {
		author, err = h.authors.GetByIdentifier(c.Request.Context(), raw)
	}
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
			return
		}
		slog.Error("author lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewAuthorResponse(author))
}

// Update handles PATCH /authors/:id. Fields absent from the body are
// left untouched; full_name set to null is cleared.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid author id"})
		return
	}
	var req dto.UpdateAuthorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Username != nil && !usernamePattern.MatchString(*req.Username) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "username must contain only letters, digits and underscores"})
		return
	}
	if req.FullName.Present && req.FullName.Valid &&
		(utf8.RuneCountInString(req.FullName.Value) == 0 || utf8.RuneCountInString(req.FullName.Value) > 100) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "full_name must be 1 to 100 characters"})
		return
	}

	patch := usecase.AuthorPatch{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName.Ptr(),
		FullNameSet: req.FullName.Present,
	}
	author, err := h.authors.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthorNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
		case errors.Is(err, usecase.ErrUsernameTaken), errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("author update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewAuthorResponse(author))
}

// Disable handles DELETE /authors/:id. Deletion is a soft-disable; the
// row stays in the store but vanishes from every read path.
func (h *AuthorHandler) Disable(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid author id"})
		return
	}
	author, err := h.authors.Disable(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
			return
		}
		slog.Error("author disable failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("author disabled", "id", id)
	c.JSON(http.StatusOK, dto.NewAuthorResponse(author))
}
