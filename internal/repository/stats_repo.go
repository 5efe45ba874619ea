// filepath: internal/repository/stats_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/shared"

	"github.com/Masterminds/squirrel"
)

// GetDashboardStatistics aggregates the logs dated within [start, end].
// Dates compare as text, so both bounds must use the stored YYYY-MM-DD form.
// Wishlist logs count towards neither minutes nor games played.
func (s *Repository) GetDashboardStatistics(start, end string) (models.DashboardStatistics, error) {
	inRange := squirrel.Expr("logs.date BETWEEN ? AND ?", start, end)

	playedQuery, playedArgs, err := s.Builder.
		Select("COALESCE(SUM(logs.minutes_played), 0)", "COUNT(*)").
		From("logs").
		Where(inRange).
		Where(squirrel.NotEq{"logs.status": models.StatusWishlist}).
		ToSql()
	if err != nil {
		return models.DashboardStatistics{}, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	completedQuery, completedArgs, err := s.Builder.
		Select("COUNT(*)").
		From("logs").
		Where(inRange).
		Where(squirrel.Eq{"logs.status": models.StatusCompleted}).
		ToSql()
	if err != nil {
		return models.DashboardStatistics{}, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}

	logging.Log.Debugf("Generated SQL for GetDashboardStatistics: %s; %s", playedQuery, completedQuery)

	var stats models.DashboardStatistics
	err = s.handle.withLock(func(db *sql.DB) error {
		if err := db.QueryRow(playedQuery, playedArgs...).Scan(&stats.TotalMinutesPlayed, &stats.TotalGamesPlayed); err != nil {
			return fmt.Errorf("%w: summing played logs: %w", shared.ErrQueryExecution, err)
		}
		if err := db.QueryRow(completedQuery, completedArgs...).Scan(&stats.TotalGamesCompleted); err != nil {
			return fmt.Errorf("%w: counting completed logs: %w", shared.ErrQueryExecution, err)
		}
		return nil
	})
	if err != nil {
		logging.Log.Errorf("Error computing dashboard statistics: %v", err)
		return models.DashboardStatistics{}, err
	}
	return stats, nil
}
