// Package handler provides the HTTP handlers for the posts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/transport/http/dto"
	"blog_backend/internal/feature/posts/usecase"
)

// PostUsecase defines the post operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type PostUsecase interface {
	Create(ctx context.Context, authorID uint, content string) (*entity.Post, error)
	Get(ctx context.Context, id uint) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error)
	ListByUsername(ctx context.Context, username string) ([]entity.Post, error)
	Disable(ctx context.Context, id uint) (*entity.Post, error)
	Delete(ctx context.Context, id uint) error
}

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new PostHandler. Constructor for dependency
// injection.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// parseID parses a positive numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondList converts entities and writes a 200 with a JSON array. An
// empty result is an empty array, never a 404: absence of posts is not
// an error at this layer.
func respondList(c *gin.Context, posts []entity.Post) {
	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, dto.NewPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /posts.
// Returns 201 with the new post, 400 when validation fails or the
// referenced author does not exist at all.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	post, err := h.posts.Create(c.Request.Context(), req.AuthorID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorMissing) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("post creation failed", "error", err, "author_id", req.AuthorID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("post created", "id", post.ID, "author_id", post.AuthorID)
	c.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

// List handles GET /posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("post listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	respondList(c, posts)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
			return
		}
		slog.Error("post lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

// ListByAuthor handles GET /posts/author/:author_id.
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	authorID, err := parseID(c.Param("author_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid author id"})
		return
	}
	posts, err := h.posts.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		slog.Error("post listing by author failed", "error", err, "author_id", authorID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	respondList(c, posts)
}

// ListByUsername handles GET /posts/user/:username.
func (h *PostHandler) ListByUsername(c *gin.Context) {
	posts, err := h.posts.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		slog.Error("post listing by username failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	respondList(c, posts)
}

// Disable handles PATCH /posts/:id, the soft removal.
func (h *PostHandler) Disable(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}
	post, err := h.posts.Disable(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
			return
		}
		slog.Error("post disable failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("post disabled", "id", id)
	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

// Delete handles DELETE /posts/:id, the hard removal.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
		case errors.Is(err, usecase.ErrHasReplies):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("post delete failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	slog.Info("post deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "post deleted successfully"})
}
