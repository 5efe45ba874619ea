// filepath: internal/repository/schema.go
package repository

import (
	"context"
	"database/sql"
	"gamelog/internal/db/migrations"
	"gamelog/internal/logging"

	"github.com/pressly/goose/v3"
)

// requiredTables are the tables other tooling reads directly.
var requiredTables = []string{"logged_games", "logs", "executable_details"}

// applySchema runs the embedded schema batch. Every statement is
// IF NOT EXISTS, so running it against an existing store is a no-op.
func applySchema(db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, r := range results {
		logging.Log.Debugf("Applied schema batch %s in %s", r.Source.Path, r.Duration)
	}
	return nil
}

// missingTables returns the required tables that are absent from the store.
func missingTables(db *sql.DB) ([]string, error) {
	var missing []string
	for _, table := range requiredTables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err == sql.ErrNoRows {
			missing = append(missing, table)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return missing, nil
}
