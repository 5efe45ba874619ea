// filepath: internal/repository/log_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/shared"

	"github.com/Masterminds/squirrel"
)

// GetRecentLogs returns at most limit logs, newest date first, optionally
// restricted to statuses. A non-positive limit yields an empty slice.
func (s *Repository) GetRecentLogs(limit int, statuses []string) ([]models.LogEntry, error) {
	if limit <= 0 {
		return []models.LogEntry{}, nil
	}
	query, args, err := s.buildLogsQuery(logQuery{
		Statuses:      statuses,
		SortColumn:    "date",
		SortDirection: "desc",
		Limit:         uint64(limit),
	})
	if err != nil {
		return nil, err
	}
	return s.queryLogs("GetRecentLogs", query, args)
}

// GetLogs returns every log sorted by a column from the sortable allow-list,
// optionally restricted to statuses.
func (s *Repository) GetLogs(sortColumn, sortDirection string, statuses []string) ([]models.LogEntry, error) {
	query, args, err := s.buildLogsQuery(logQuery{
		Statuses:      statuses,
		SortColumn:    sortColumn,
		SortDirection: sortDirection,
	})
	if err != nil {
		return nil, err
	}
	return s.queryLogs("GetLogs", query, args)
}

func (s *Repository) queryLogs(op, query string, args []interface{}) ([]models.LogEntry, error) {
	logging.Log.Debugf("Generated SQL for %s: %s", op, query)
	logging.Log.Debugf("Arguments: %v", args)

	var entries []models.LogEntry
	err := s.handle.withLock(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", shared.ErrQueryExecution, op, err)
		}
		defer rows.Close()

		entries, err = collectLogEntries(rows)
		return err
	})
	if err != nil {
		logging.Log.Errorf("Error executing %s query: %v", op, err)
		return nil, err
	}
	return entries, nil
}

// GetLogByID returns the log with the given id.
func (s *Repository) GetLogByID(id int64) (models.LogEntry, error) {
	query, args, err := s.selectLogs().Where(squirrel.Eq{"logs.id": id}).ToSql()
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	var entry models.LogEntry
	err = s.handle.withLock(func(db *sql.DB) error {
		entry, err = scanLogEntry(db.QueryRow(query, args...))
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: log %d", shared.ErrNotFound, id)
		}
		return err
	})
	if err != nil {
		return models.LogEntry{}, err
	}
	return entry, nil
}

// AddLog stores a new log and returns its id. The embedded game is inserted
// when its id is unknown; an existing game row is left untouched.
func (s *Repository) AddLog(input models.LogEntryInput) (int64, error) {
	var logID int64
	err := s.handle.withTx(func(tx *Tx) error {
		inserted, err := tx.upsertGameInTx(s.Builder, input.Game)
		if err != nil {
			return err
		}
		if inserted {
			logging.Log.Debugf("Added game %d (%s)", input.Game.ID, input.Game.Title)
		}

		logID, err = tx.insertLogInTx(s.Builder, input.Game.ID, input)
		return err
	})
	if err != nil {
		logging.Log.Errorf("Error adding log for game %d: %v", input.Game.ID, err)
		return 0, err
	}
	return logID, nil
}

// UpdateLog overwrites every editable field of a log and refreshes updated_at.
// It fails with shared.ErrNotFound when no log has the given id.
func (s *Repository) UpdateLog(update models.LogEntryUpdate) (int64, error) {
	query, args, err := s.Builder.Update("logs").
		Set("date", update.Date).
		Set("rating", update.Rating).
		Set("notes", update.Notes).
		Set("status", update.Status).
		Set("minutes_played", update.MinutesPlayed).
		Set("updated_at", squirrel.Expr("strftime('%Y-%m-%dT%H:%M:%fZ', 'now')")).
		Where(squirrel.Eq{"id": update.ID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	err = s.handle.withLock(func(db *sql.DB) error {
		res, err := db.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("%w: updating log %d: %w", shared.ErrQueryExecution, update.ID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: updating log %d: %w", shared.ErrQueryExecution, update.ID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: log %d", shared.ErrNotFound, update.ID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return update.ID, nil
}

// DeleteLog removes a log. Deleting an id that does not exist succeeds.
// The referenced game is never removed.
func (s *Repository) DeleteLog(id int64) (int64, error) {
	query, args, err := s.Builder.Delete("logs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	err = s.handle.withLock(func(db *sql.DB) error {
		res, err := db.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("%w: deleting log %d: %w", shared.ErrQueryExecution, id, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			logging.Log.Debugf("DeleteLog: log %d did not exist", id)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
