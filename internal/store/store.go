// Package store opens and migrates the entity database.
//
// The search service is a read-only consumer: entity rows are written by
// the platform's CRUD modules, this store only serves the per-entity
// substring lookups behind the search strategies.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register the pure-Go sqlite driver

	"github.com/competia/searchapi/internal/domain"
)

const driverName = "sqlite"

// Store wraps the sqlite connection used by all entity repositories.
type Store struct {
	db *sql.DB
}

// Open opens the entity database and applies schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL allows concurrent readers during writes from the CRUD side.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// sqlite serves one connection best; this also keeps :memory:
	// databases on a single underlying handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying connection for repositories.
func (s *Store) DB() *sql.DB { return s.db }

// Ping checks database availability.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
