// filepath: internal/repository/recovery_repo.go
package repository

import (
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/shared"
)

// orphanedGameIDsQuery lists game ids referenced by logs or executable
// mappings that have no row in logged_games.
const orphanedGameIDsQuery = `
SELECT game_id FROM logs WHERE game_id NOT IN (SELECT id FROM logged_games)
UNION
SELECT game_id FROM executable_details WHERE game_id NOT IN (SELECT id FROM logged_games)
ORDER BY game_id`

// RepairOrphanedGames finds game ids that logs or executable mappings point at
// but the catalogue table lacks, and inserts a placeholder game for each so the
// logs hydrate again. With dryRun set nothing is written. It returns the ids found.
func (s *Repository) RepairOrphanedGames(dryRun bool) ([]int64, error) {
	ids := make([]int64, 0)
	err := s.handle.withTx(func(tx *Tx) error {
		rows, err := tx.Query(orphanedGameIDsQuery)
		if err != nil {
			return fmt.Errorf("%w: listing orphaned games: %w", shared.ErrQueryExecution, err)
		}
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("%w: scanning orphaned game id: %w", shared.ErrQueryExecution, err)
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: listing orphaned games: %w", shared.ErrQueryExecution, err)
		}

		if dryRun {
			return nil
		}
		for _, id := range ids {
			if err := tx.insertPlaceholderGameInTx(s.Builder, id); err != nil {
				return err
			}
			logging.Log.Infof("Inserted placeholder for orphaned game %d", id)
		}
		return nil
	})
	if err != nil {
		logging.Log.Errorf("Error repairing orphaned games: %v", err)
		return nil, err
	}
	return ids, nil
}
