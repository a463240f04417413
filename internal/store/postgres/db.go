package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/we3pr0/AbundantLifeChurch/internal/config"
)

// DB represents a connection to the PostgreSQL database
type DB struct {
	db *sqlx.DB
}

// NewDB creates a new PostgreSQL database connection
func NewDB(cfg config.Database) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db: db}, nil
}

// Primary returns the primary database connection (for writes)
func (d *DB) Primary(ctx context.Context) *sqlx.DB {
	return d.db
}

// Replica returns the replica database connection (for reads)
func (d *DB) Replica() *sqlx.DB {
	return d.db
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}
