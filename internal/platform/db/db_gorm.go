// Package db opens and migrates the relational store.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authorentity "blog_backend/internal/feature/authors/domain/entity"
	postentity "blog_backend/internal/feature/posts/domain/entity"
	replyentity "blog_backend/internal/feature/replies/domain/entity"
	"blog_backend/internal/platform/config"
)

// OpenDB connects to the configured database, retrying for up to a
// minute so the service survives a database that comes up slower than
// the process. TranslateError normalizes driver-specific constraint
// failures into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated,
// which the repositories rely on.
func OpenDB(cfg config.Config) *gorm.DB {
	dial, err := dialector(cfg)
	if err != nil {
		log.Fatalf("DB config invalid: %v", err)
	}

	var db *gorm.DB
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema for all entities. Authors go
// first so the posts and replies foreign keys have a target.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authorentity.Author{},
		&postentity.Post{},
		&replyentity.Reply{},
	)
}

func dialector(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return gmysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return gpostgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
