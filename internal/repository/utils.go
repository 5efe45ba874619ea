// filepath: internal/repository/utils.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/models"
	"gamelog/internal/shared"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanLogEntry reads one row selected with logColumns into a LogEntry.
// A row whose game did not resolve is reported as shared.ErrDataIntegrity.
func scanLogEntry(row rowScanner) (models.LogEntry, error) {
	var (
		entry     models.LogEntry
		logGameID int64
		gameID    sql.NullInt64
		title     sql.NullString
		coverID   sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.Date,
		&entry.Rating,
		&entry.Notes,
		&entry.Status,
		&entry.MinutesPlayed,
		&logGameID,
		&gameID,
		&title,
		&coverID,
	)
	if err == sql.ErrNoRows {
		return models.LogEntry{}, err
	}
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("%w: scanning log row: %w", shared.ErrQueryExecution, err)
	}

	if !gameID.Valid {
		return models.LogEntry{}, fmt.Errorf("%w: log %d references missing game %d", shared.ErrDataIntegrity, entry.ID, logGameID)
	}
	entry.Game = models.Game{
		ID:      gameID.Int64,
		Title:   title.String,
		CoverID: coverID.String,
	}
	return entry, nil
}

// collectLogEntries drains rows into a slice. The result is never nil.
func collectLogEntries(rows *sql.Rows) ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating log rows: %w", shared.ErrQueryExecution, err)
	}
	return entries, nil
}
