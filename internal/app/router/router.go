// Package router declares the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authorhandler "blog_backend/internal/feature/authors/transport/handler"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	replyhandler "blog_backend/internal/feature/replies/transport/handler"
	"blog_backend/internal/platform/http/handler"
	"blog_backend/internal/platform/http/middleware"
)

// NewRouter builds the gin engine with all routes attached.
func NewRouter(authors *authorhandler.AuthorHandler, posts *posthandler.PostHandler,
	replies *replyhandler.ReplyHandler) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	a := r.Group("/authors")
	{
		a.POST("", authors.Create)
		a.GET("", authors.List)
		// :id also accepts a username or email identifier
		a.GET("/:id", authors.Get)
		a.PATCH("/:id", authors.Update)
		// Delete is a soft-disable; there is no undelete
		a.DELETE("/:id", authors.Disable)
	}

	p := r.Group("/posts")
	{
		p.POST("", posts.Create)
		p.GET("", posts.List)
		p.GET("/:id", posts.Get)
		p.GET("/author/:author_id", posts.ListByAuthor)
		p.GET("/user/:username", posts.ListByUsername)
		// PATCH disables, DELETE removes the row for good
		p.PATCH("/:id", posts.Disable)
		p.DELETE("/:id", posts.Delete)
	}

	rp := r.Group("/replies")
	{
		rp.POST("", replies.Create)
		rp.GET("/post/:post_id", replies.ListByPost)
		rp.DELETE("/:id", replies.Disable)
	}

	return r
}
