// Command seed fills the configured database with demo data by
// exercising the regular usecases, so seeded rows pass through the same
// identity and visibility rules as real traffic.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"blog_backend/internal/app/di"
	"blog_backend/internal/platform/config"
	infradb "blog_backend/internal/platform/db"
)

func main() {
	var (
		authors = flag.Int("authors", 3, "number of demo authors")
		posts   = flag.Int("posts", 2, "posts per author")
		replies = flag.Int("replies", 1, "replies per post")
		verbose = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.RunMigrations = true

	db := infradb.OpenDB(cfg)
	c := di.New(db)
	ctx := context.Background()

	// A short run id keeps repeated seeds from tripping the uniqueness
	// rules (usernames are capped at 15 characters).
	run := strings.ReplaceAll(uuid.NewString()[:6], "-", "")

	for i := 0; i < *authors; i++ {
		username := fmt.Sprintf("demo%d_%s", i, run)
		author, err := c.Authors.Register(ctx, username,
			fmt.Sprintf("%s@example.com", username), "demo-password", nil)
		if err != nil {
			log.Fatalf("seed author %s: %v", username, err)
		}
		if *verbose {
			log.Printf("author %d (%s)", author.ID, author.Username)
		}

		for j := 0; j < *posts; j++ {
			post, err := c.Posts.Create(ctx, author.ID,
				fmt.Sprintf("post %d from %s", j+1, author.Username))
			if err != nil {
				log.Fatalf("seed post: %v", err)
			}
			if *verbose {
				log.Printf("  post %d", post.ID)
			}

			for k := 0; k < *replies; k++ {
				reply, err := c.Replies.Create(ctx, author.ID, post.ID,
					fmt.Sprintf("reply %d to post %d", k+1, post.ID))
				if err != nil {
					log.Fatalf("seed reply: %v", err)
				}
				if *verbose {
					log.Printf("    reply %d", reply.ID)
				}
			}
		}
	}

	log.Printf("seeded %d authors", *authors)
}
