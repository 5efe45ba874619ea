// filepath: internal/repository/game_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/models"
	"gamelog/internal/shared"

	"github.com/Masterminds/squirrel"
)

func gameCacheKey(id int64) string {
	return fmt.Sprintf("game:%d", id)
}

// GetLoggedGame returns the catalogue entry stored for id.
// Game rows never change after insert, so hits are served from the cache.
func (s *Repository) GetLoggedGame(id int64) (models.Game, error) {
	key := gameCacheKey(id)
	if cached, found := s.cacheGet(key); found {
		return cached.(models.Game), nil
	}

	query, args, err := s.Builder.Select("id", "title", "cover_id").
		From("logged_games").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Game{}, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	var game models.Game
	err = s.handle.withLock(func(db *sql.DB) error {
		var coverID sql.NullString
		err := db.QueryRow(query, args...).Scan(&game.ID, &game.Title, &coverID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: game %d", shared.ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("%w: reading game %d: %w", shared.ErrQueryExecution, id, err)
		}
		game.CoverID = coverID.String
		return nil
	})
	if err != nil {
		return models.Game{}, err
	}

	s.cacheSet(key, game)
	return game, nil
}
