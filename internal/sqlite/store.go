// Package sqlite implements the promptdeck Store on SQLite.
// Entities live in three tables forming a strict tree (categories →
// sections → prompts); sibling display order is a per-parent order_index
// column maintained by the store.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store. It holds a database/sql pool; every
// operation acquires a connection, runs one transaction, and releases it.
// No row data is cached between calls.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	log  *zap.SugaredLogger
	path string
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and brings the schema up to date. Opening an existing
// database is non-destructive; the schema migration is idempotent.
// A nil logger is replaced with a no-op logger.
func Open(config types.Config, log *zap.SugaredLogger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbFile := config.DBFile
	if dbFile == "" {
		dbFile = types.DefaultDBFile
	}
	path := filepath.Join(dataDir, dbFile)

	// Foreign keys are enabled per connection via the DSN pragma so
	// cascade deletes apply on every pooled connection.
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	log.Debugw("store opened", "path", path)
	return &Store{db: db, log: log, path: path}, nil
}

// Close releases the database pool. Idempotent; operations after Close
// return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.log.Debugw("store closed", "path", s.path)
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// database returns the pool, or ErrStoreClosed after Close.
func (s *Store) database() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
