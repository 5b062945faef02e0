// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the process reads from its environment.
type Config struct {
	// DBDriver selects the SQL backend: "mysql" or "postgres".
	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`
	DBUser     string `env:"DB_USER" envDefault:"blog"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBName     string `env:"DB_NAME" envDefault:"blog"`

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`

	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
