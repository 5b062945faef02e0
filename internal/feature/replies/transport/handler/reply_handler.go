// Package handler provides the HTTP handlers for the replies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/replies/domain/entity"
	"blog_backend/internal/feature/replies/transport/http/dto"
	"blog_backend/internal/feature/replies/usecase"
)

// ReplyUsecase defines the reply operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type ReplyUsecase interface {
	Create(ctx context.Context, authorID, postID uint, content string) (*entity.Reply, error)
	ListByPost(ctx context.Context, postID uint) ([]entity.Reply, error)
	Disable(ctx context.Context, id uint) (*entity.Reply, error)
}

// ReplyHandler handles HTTP requests for reply operations.
type ReplyHandler struct {
	replies ReplyUsecase
}

// NewReplyHandler creates a new ReplyHandler. Constructor for dependency
// injection.
func NewReplyHandler(replies ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{replies: replies}
}

// parseID parses a positive numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// Create handles POST /replies.
// Returns 201 with the new reply, 400 when validation fails or either
// referenced row does not exist.
func (h *ReplyHandler) Create(c *gin.Context) {
	var req dto.CreateReplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	reply, err := h.replies.Create(c.Request.Context(), req.AuthorID, req.PostID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrPostMissing) || errors.Is(err, usecase.ErrAuthorMissing) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("reply creation failed", "error", err, "post_id", req.PostID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("reply created", "id", reply.ID, "post_id", reply.PostID)
	c.JSON(http.StatusCreated, dto.NewReplyResponse(reply))
}

// ListByPost handles GET /replies/post/:post_id. An empty list is a
// valid answer, not a 404.
func (h *ReplyHandler) ListByPost(c *gin.Context) {
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}
	replies, err := h.replies.ListByPost(c.Request.Context(), postID)
	if err != nil {
		slog.Error("reply listing failed", "error", err, "post_id", postID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.ReplyResponse, 0, len(replies))
	for i := range replies {
		out = append(out, dto.NewReplyResponse(&replies[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Disable handles DELETE /replies/:id. Removal is a soft-disable; a
// second delete of the same reply reports 404.
func (h *ReplyHandler) Disable(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid reply id"})
		return
	}
	reply, err := h.replies.Disable(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReplyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "reply not found"})
			return
		}
		slog.Error("reply disable failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("reply disabled", "id", id)
	c.JSON(http.StatusOK, dto.NewReplyResponse(reply))
}
