// Package sqlite implements the storage contracts on a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nishatiwari24/game-backend/internal/platform/storage/sqlitemigrate"
	"github.com/nishatiwari24/game-backend/internal/storage"
	"github.com/nishatiwari24/game-backend/internal/storage/sqlite/migrations"
)

// Store is a SQLite-backed implementation of every storage contract.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ storage.SessionStore        = (*Store)(nil)
	_ storage.SessionRequestStore = (*Store)(nil)
	_ storage.PlayerStore         = (*Store)(nil)
	_ storage.HistoryStore        = (*Store)(nil)
	_ storage.WalletStore         = (*Store)(nil)
)

// Open opens (or creates) the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent round traffic.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
