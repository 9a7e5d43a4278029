// Package migrations manages SQL schema migrations
package migrations

import (
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/coursehub/coursehub/internal/logger"
)

// Config holds migration configuration
type Config struct {
	MigrationsPath string
	DatabaseURL    string
	RetryAttempts  int
	RetryDelay     time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MigrationsPath: "file://migrations",
		RetryAttempts:  5,
		RetryDelay:     time.Second * 3,
	}
}

// Service handles database migrations
type Service struct {
	config  Config
	migrate *migrate.Migrate
}

// NewService creates a new migration service, retrying the database
// connection a few times before giving up
func NewService(config Config) (*Service, error) {
	var m *migrate.Migrate
	var err error

	for i := 0; i < config.RetryAttempts; i++ {
		m, err = migrate.New(config.MigrationsPath, config.DatabaseURL)
		if err == nil {
			break
		}
		logger.Warnf("Failed to connect to database, attempt %d/%d: %v", i+1, config.RetryAttempts, err)
		time.Sleep(config.RetryDelay)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance after %d attempts: %v", config.RetryAttempts, err)
	}

	return &Service{config: config, migrate: m}, nil
}

// Up runs all pending migrations
func (s *Service) Up() error {
	if err := s.migrate.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed successfully")
	return nil
}

// Down rolls back all migrations
func (s *Service) Down() error {
	if err := s.migrate.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to rollback migrations: %v", err)
	}
	logger.Info("Rollback completed successfully")
	return nil
}

// Steps runs n migrations up or down
func (s *Service) Steps(n int) error {
	if err := s.migrate.Steps(n); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run %d migrations: %v", n, err)
	}
	return nil
}

// Version returns the current migration version
func (s *Service) Version() (uint, bool, error) {
	return s.migrate.Version()
}

// Force forces a specific version
func (s *Service) Force(version int) error {
	return s.migrate.Force(version)
}
