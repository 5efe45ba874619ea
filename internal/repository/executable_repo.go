// filepath: internal/repository/executable_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/shared"

	"github.com/Masterminds/squirrel"
)

func executableCacheKey(name string) string {
	return "exe:" + name
}

// AddExecutableDetails appends a mapping from an executable name to a game
// and returns the new row id. Mappings are never updated in place.
func (s *Repository) AddExecutableDetails(details models.ExecutableDetails) (int64, error) {
	query, args, err := s.Builder.Insert("executable_details").
		Columns("executable_name", "game_id").
		Values(details.Name, details.GameID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	var id int64
	err = s.handle.withLock(func(db *sql.DB) error {
		res, err := db.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("%w: inserting executable %q: %w", shared.ErrQueryExecution, details.Name, err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: reading executable row id: %w", shared.ErrQueryExecution, err)
		}
		return nil
	})
	if err != nil {
		logging.Log.Errorf("Error adding executable details: %v", err)
		return 0, err
	}

	s.cacheDelete(executableCacheKey(details.Name))
	return id, nil
}

// GetExecutableDetails returns the mapping for an executable name.
// When the name was mapped more than once the most recent mapping wins.
func (s *Repository) GetExecutableDetails(name string) (models.ExecutableDetails, error) {
	key := executableCacheKey(name)
	if cached, found := s.cacheGet(key); found {
		return cached.(models.ExecutableDetails), nil
	}

	query, args, err := s.Builder.Select("executable_name", "game_id").
		From("executable_details").
		Where(squirrel.Eq{"executable_name": name}).
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.ExecutableDetails{}, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	var details models.ExecutableDetails
	err = s.handle.withLock(func(db *sql.DB) error {
		err := db.QueryRow(query, args...).Scan(&details.Name, &details.GameID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: executable %q", shared.ErrNotFound, name)
		}
		if err != nil {
			return fmt.Errorf("%w: reading executable %q: %w", shared.ErrQueryExecution, name, err)
		}
		return nil
	})
	if err != nil {
		return models.ExecutableDetails{}, err
	}

	s.cacheSet(key, details)
	return details, nil
}
