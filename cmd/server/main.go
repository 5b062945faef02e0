package main

import (
	"log"

	"blog_backend/internal/app/di"
	"blog_backend/internal/app/router"
	"blog_backend/internal/platform/config"
	infradb "blog_backend/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Repositories, usecases, handlers
	c := di.New(db)

	// Router
	r := router.NewRouter(c.AuthorHandler, c.PostHandler, c.ReplyHandler)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
