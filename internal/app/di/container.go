// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"gorm.io/gorm"

	authoradapters "blog_backend/internal/feature/authors/adapters"
	authorhandler "blog_backend/internal/feature/authors/transport/handler"
	authorusecase "blog_backend/internal/feature/authors/usecase"
	postadapters "blog_backend/internal/feature/posts/adapters"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	postusecase "blog_backend/internal/feature/posts/usecase"
	replyadapters "blog_backend/internal/feature/replies/adapters"
	replyhandler "blog_backend/internal/feature/replies/transport/handler"
	replyusecase "blog_backend/internal/feature/replies/usecase"
)

// Container holds every usecase and handler wired onto one database
// connection. cmd/server and cmd/seed share it so the wiring lives in
// one place.
type Container struct {
	Authors *authorusecase.AuthorUsecase
	Posts   *postusecase.PostUsecase
	Replies *replyusecase.ReplyUsecase

	AuthorHandler *authorhandler.AuthorHandler
	PostHandler   *posthandler.PostHandler
	ReplyHandler  *replyhandler.ReplyHandler
}

// New wires repositories, usecases and handlers for the given database.
func New(db *gorm.DB) *Container {
	authors := authorusecase.NewAuthorUsecase(authoradapters.NewAuthorRepository(db))
	posts := postusecase.NewPostUsecase(postadapters.NewPostRepository(db))
	replies := replyusecase.NewReplyUsecase(replyadapters.NewReplyRepository(db))

	return &Container{
		Authors: authors,
		Posts:   posts,
		Replies: replies,

		AuthorHandler: authorhandler.NewAuthorHandler(authors),
		PostHandler:   posthandler.NewPostHandler(posts),
		ReplyHandler:  replyhandler.NewReplyHandler(replies),
	}
}
