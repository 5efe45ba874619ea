// filepath: internal/repository/recovery_repo_test.go
package repository

import (
	"database/sql"
	"gamelog/internal/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairOrphanedGames(t *testing.T) {
	repo := setupTestRepo(t)
	addTestLog(t, repo, models.Game{ID: 1, Title: "Celeste"}, "2024-01-01", models.StatusPlaying, 10)

	err := repo.handle.withLock(func(db *sql.DB) error {
		if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
			return err
		}
		if _, err := db.Exec("INSERT INTO logs (game_id, date, status) VALUES (50, '2024-01-02', 'playing')"); err != nil {
			return err
		}
		_, err := db.Exec("INSERT INTO executable_details (executable_name, game_id) VALUES ('x.exe', 60)")
		return err
	})
	require.NoError(t, err)

	ids, err := repo.RepairOrphanedGames(true)
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 60}, ids)
	assert.Equal(t, 1, countRows(t, repo, "logged_games"))

	ids, err = repo.RepairOrphanedGames(false)
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 60}, ids)
	assert.Equal(t, 3, countRows(t, repo, "logged_games"))

	entries, err := repo.GetLogs("date", "asc", nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Unknown game 50", entries[1].Game.Title)

	ids, err = repo.RepairOrphanedGames(false)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBackup(t *testing.T) {
	repo := setupTestRepo(t)
	addTestLog(t, repo, models.Game{ID: 1, Title: "Celeste"}, "2024-01-01", models.StatusPlaying, 10)

	dir := filepath.Join(t.TempDir(), "backups")
	first, err := repo.Backup(dir)
	require.NoError(t, err)
	second, err := repo.Backup(dir)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, dir, filepath.Dir(first.Path))
	assert.Greater(t, first.SizeBytes, int64(0))
	assert.Equal(t, repo.Handle().Path(), first.Source)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
