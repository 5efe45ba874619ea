// filepath: internal/repository/handle.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/shared"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver
)

// Handle is the exclusively-owned access point to one store file.
// Every operation holds mu for its full duration, so callers are
// serialized on a single physical connection.
type Handle struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Initialize creates the containing directory if needed, opens (or creates)
// the store file at location and applies the schema batch.
// Every failure is reported as shared.ErrStorageInit.
func Initialize(location string) (*Handle, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: empty store location", shared.ErrStorageInit)
	}

	dir := filepath.Dir(location)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating directory %s: %w", shared.ErrStorageInit, dir, err)
	}

	db, err := sql.Open("sqlite", location+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", shared.ErrStorageInit, location, err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: applying schema to %s: %w", shared.ErrStorageInit, location, err)
	}

	missing, err := missingTables(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: inspecting schema of %s: %w", shared.ErrStorageInit, location, err)
	}
	if len(missing) > 0 {
		db.Close()
		return nil, fmt.Errorf("%w: tables missing after schema batch: %s", shared.ErrStorageInit, strings.Join(missing, ", "))
	}

	// One physical connection; the mutex below serializes its users.
	db.SetMaxOpenConns(1)

	logging.Log.Debugf("Store opened at %s", location)
	return &Handle{db: db, path: location}, nil
}

// Path returns the location the handle was opened with.
func (h *Handle) Path() string {
	return h.path
}

// withLock runs fn with exclusive access to the connection.
func (h *Handle) withLock(fn func(db *sql.DB) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return fmt.Errorf("%w: store handle is closed", shared.ErrQueryExecution)
	}
	return fn(h.db)
}

// withTx runs fn inside a transaction with exclusive access to the connection.
// The transaction is committed only if fn returns nil.
func (h *Handle) withTx(fn func(tx *Tx) error) error {
	return h.withLock(func(db *sql.DB) error {
		sqlTx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("%w: starting transaction: %w", shared.ErrQueryExecution, err)
		}
		defer sqlTx.Rollback()

		if err := fn(&Tx{sqlTx}); err != nil {
			return err
		}

		if err := sqlTx.Commit(); err != nil {
			return fmt.Errorf("%w: committing transaction: %w", shared.ErrQueryExecution, err)
		}
		return nil
	})
}

// BackupTo writes a consistent copy of the store to dest using VACUUM INTO.
func (h *Handle) BackupTo(dest string) error {
	return h.withLock(func(db *sql.DB) error {
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("%w: creating backup directory: %w", shared.ErrQueryExecution, err)
		}
		if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
			return fmt.Errorf("%w: backing up store: %w", shared.ErrQueryExecution, err)
		}
		return nil
	})
}

// Close releases the connection. Close is idempotent.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
