// filepath: internal/repository/dbtx.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/shared"

	"github.com/Masterminds/squirrel"
)

// Tx is a wrapper around *sql.Tx that provides transactional store operations.
type Tx struct {
	*sql.Tx
}

// upsertGameInTx inserts the game unless a row with its id already exists.
// An existing row is never modified. Reports whether a row was inserted.
func (tx *Tx) upsertGameInTx(b squirrel.StatementBuilderType, game models.Game) (bool, error) {
	query, args, err := b.Insert("logged_games").
		Columns("id", "title", "cover_id").
		Values(game.ID, game.Title, game.CoverID).
		Suffix("ON CONFLICT(id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: building game insert: %w", shared.ErrInvalidQuery, err)
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: inserting game %d: %w", shared.ErrQueryExecution, game.ID, err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: inserting game %d: %w", shared.ErrQueryExecution, game.ID, err)
	}
	return inserted > 0, nil
}

// insertLogInTx inserts a log row referencing gameID and returns its id.
func (tx *Tx) insertLogInTx(b squirrel.StatementBuilderType, gameID int64, input models.LogEntryInput) (int64, error) {
	query, args, err := b.Insert("logs").
		Columns("game_id", "date", "rating", "notes", "status", "minutes_played").
		Values(gameID, input.Date, input.Rating, input.Notes, input.Status, input.MinutesPlayed).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: building log insert: %w", shared.ErrInvalidQuery, err)
	}

	logging.Log.Debugf("Generated SQL for AddLog: %s", query)
	logging.Log.Debugf("Arguments: %v", args)

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting log: %w", shared.ErrQueryExecution, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new log id: %w", shared.ErrQueryExecution, err)
	}
	return id, nil
}

// insertPlaceholderGameInTx inserts a stand-in row for a game id that logs
// reference but the catalogue table lacks.
func (tx *Tx) insertPlaceholderGameInTx(b squirrel.StatementBuilderType, gameID int64) error {
	_, err := tx.upsertGameInTx(b, models.Game{
		ID:    gameID,
		Title: fmt.Sprintf("Unknown game %d", gameID),
	})
	return err
}
