// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Run all pending migrations
// go run cmd/migrate/main.go -down        # Rollback all migrations
// go run cmd/migrate/main.go -steps 1     # Run one migration
// go run cmd/migrate/main.go -steps -1    # Rollback one migration
// go run cmd/migrate/main.go -force 1     # Force version 1
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/coursehub/coursehub/config"
	"github.com/coursehub/coursehub/internal/db/migrations"
	"github.com/coursehub/coursehub/internal/logger"
)

func main() {
	logger.Initialize()

	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	// Build database URL from env vars
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_PORT", "5432"),
		config.GetEnv("DB_NAME", "coursehub"),
		config.GetEnv("DB_SSL_MODE", "disable"),
	)

	var (
		dbURLFlag = flag.String("db", "", "Database URL (optional, defaults to env vars)")
		migPath   = flag.String("path", "file://migrations", "Path to migration files")
		down      = flag.Bool("down", false, "Roll back migrations")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (up or down)")
		force     = flag.Int("force", -1, "Force a specific version")
		retries   = flag.Int("retries", 5, "Number of connection retries")
		retryWait = flag.Duration("retry-wait", 3*time.Second, "Wait time between retries")
	)
	flag.Parse()

	if *dbURLFlag != "" {
		dbURL = *dbURLFlag
	}

	service, err := migrations.NewService(migrations.Config{
		MigrationsPath: *migPath,
		DatabaseURL:    dbURL,
		RetryAttempts:  *retries,
		RetryDelay:     *retryWait,
	})
	if err != nil {
		logger.Fatalf("Failed to create migration service: %v", err)
	}

	if *force >= 0 {
		if err := service.Force(*force); err != nil {
			logger.Fatalf("Failed to force version %d: %v", *force, err)
		}
		logger.Infof("Successfully forced version to %d", *force)
		os.Exit(0)
	}

	if *steps != 0 {
		if err := service.Steps(*steps); err != nil {
			logger.Fatalf("Failed to apply %d steps: %v", *steps, err)
		}
		logger.Infof("Successfully applied %d steps", *steps)
		os.Exit(0)
	}

	if *down {
		if err := service.Down(); err != nil {
			logger.Fatalf("Migration rollback failed: %v", err)
		}
	} else {
		if err := service.Up(); err != nil {
			logger.Fatalf("Migration failed: %v", err)
		}
	}

	version, dirty, err := service.Version()
	if err != nil {
		logger.Warnf("Could not get final version: %v", err)
	} else {
		logger.Infof("Current migration version: %d (dirty: %v)", version, dirty)
	}
}
