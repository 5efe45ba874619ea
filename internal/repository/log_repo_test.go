// filepath: internal/repository/log_repo_test.go
package repository

import (
	"database/sql"
	"errors"
	"gamelog/internal/models"
	"gamelog/internal/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLog_GameIsInsertedOnce(t *testing.T) {
	repo := setupTestRepo(t)

	hades := models.Game{ID: 7, Title: "Hades", CoverID: "c1"}
	firstID := addTestLog(t, repo, hades, "2024-01-01", models.StatusPlaying, 60)

	entry, err := repo.GetLogByID(firstID)
	require.NoError(t, err)
	assert.Equal(t, "Hades", entry.Game.Title)
	assert.Equal(t, "c1", entry.Game.CoverID)
	assert.Equal(t, 60, entry.MinutesPlayed)
	assert.Equal(t, models.StatusPlaying, entry.Status)
	assert.NotEmpty(t, entry.CreatedAt)
	assert.NotEmpty(t, entry.UpdatedAt)
	assert.Equal(t, 1, countRows(t, repo, "logged_games"))

	secondID := addTestLog(t, repo, models.Game{ID: 7, Title: "Hades II", CoverID: "c2"}, "2024-01-02", models.StatusCompleted, 30)
	assert.NotEqual(t, firstID, secondID)

	entry, err = repo.GetLogByID(secondID)
	require.NoError(t, err)
	assert.Equal(t, "Hades", entry.Game.Title)
	assert.Equal(t, "c1", entry.Game.CoverID)
	assert.Equal(t, 1, countRows(t, repo, "logged_games"))
	assert.Equal(t, 2, countRows(t, repo, "logs"))
}

func TestGetLogByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetLogByID(42)
	assert.True(t, errors.Is(err, shared.ErrNotFound), "got %v", err)
}

func TestGetRecentLogs(t *testing.T) {
	repo := setupTestRepo(t)
	celeste := models.Game{ID: 1, Title: "Celeste"}
	tunic := models.Game{ID: 2, Title: "Tunic"}

	addTestLog(t, repo, celeste, "2024-01-03", models.StatusPlaying, 10)
	addTestLog(t, repo, tunic, "2024-01-05", models.StatusCompleted, 20)
	addTestLog(t, repo, celeste, "2024-01-01", models.StatusWishlist, 0)
	addTestLog(t, repo, tunic, "2024-01-04", models.StatusBacklog, 5)

	t.Run("bounded by limit and newest first", func(t *testing.T) {
		entries, err := repo.GetRecentLogs(3, nil)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].Date, entries[i].Date)
		}
		assert.Equal(t, "2024-01-05", entries[0].Date)
	})

	t.Run("limit larger than store", func(t *testing.T) {
		entries, err := repo.GetRecentLogs(100, []string{})
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			entries, err := repo.GetRecentLogs(limit, nil)
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		entries, err := repo.GetRecentLogs(10, []string{models.StatusPlaying, models.StatusBacklog})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "2024-01-04", entries[0].Date)
		assert.Equal(t, "Tunic", entries[0].Game.Title)
		assert.Equal(t, "2024-01-03", entries[1].Date)
	})

	t.Run("filter matching nothing", func(t *testing.T) {
		entries, err := repo.GetRecentLogs(10, []string{models.StatusAbandoned})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := repo.GetRecentLogs(10, []string{"finished"})
		assert.True(t, errors.Is(err, shared.ErrInvalidQuery))
	})
}

func TestGetLogs(t *testing.T) {
	repo := setupTestRepo(t)
	addTestLog(t, repo, models.Game{ID: 1, Title: "Celeste"}, "2024-01-03", models.StatusPlaying, 40)
	addTestLog(t, repo, models.Game{ID: 2, Title: "Animal Well"}, "2024-01-05", models.StatusCompleted, 10)
	addTestLog(t, repo, models.Game{ID: 3, Title: "Balatro"}, "2024-01-04", models.StatusCompleted, 25)

	entries, err := repo.GetLogs("title", "asc", nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Animal Well", "Balatro", "Celeste"}, []string{entries[0].Game.Title, entries[1].Game.Title, entries[2].Game.Title})

	entries, err = repo.GetLogs("minutes_played", "DESC", []string{models.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 25, entries[0].MinutesPlayed)
	assert.Equal(t, 10, entries[1].MinutesPlayed)
}

func TestGetLogs_InvalidSortRunsNoQuery(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Handle().Close())

	// A closed handle fails any statement with ErrQueryExecution, so getting
	// ErrInvalidQuery here shows validation ran before anything touched the store.
	_, err := repo.GetLogs("rowid; DROP TABLE logs", "asc", nil)
	assert.True(t, errors.Is(err, shared.ErrInvalidQuery), "got %v", err)

	_, err = repo.GetLogs("date", "asc; --", nil)
	assert.True(t, errors.Is(err, shared.ErrInvalidQuery), "got %v", err)

	_, err = repo.GetLogs("date", "asc", nil)
	assert.True(t, errors.Is(err, shared.ErrQueryExecution), "got %v", err)
}

func TestUpdateLog(t *testing.T) {
	repo := setupTestRepo(t)
	id := addTestLog(t, repo, models.Game{ID: 9, Title: "Hollow Knight"}, "2024-05-01", models.StatusPlaying, 45)

	before, err := repo.GetLogByID(id)
	require.NoError(t, err)

	got, err := repo.UpdateLog(models.LogEntryUpdate{
		ID:            id,
		Date:          "2024-05-02",
		Rating:        10,
		Notes:         "Finally beat the Radiance",
		Status:        models.StatusCompleted,
		MinutesPlayed: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	after, err := repo.GetLogByID(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", after.Date)
	assert.Equal(t, 10, after.Rating)
	assert.Equal(t, "Finally beat the Radiance", after.Notes)
	assert.Equal(t, models.StatusCompleted, after.Status)
	assert.Equal(t, 120, after.MinutesPlayed)
	assert.Equal(t, before.Game, after.Game)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.GreaterOrEqual(t, after.UpdatedAt, before.UpdatedAt)
}

func TestUpdateLog_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.UpdateLog(models.LogEntryUpdate{ID: 404, Date: "2024-01-01", Status: models.StatusPlaying})
	assert.True(t, errors.Is(err, shared.ErrNotFound), "got %v", err)
	assert.Equal(t, 0, countRows(t, repo, "logs"))
}

func TestDeleteLog_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)
	id := addTestLog(t, repo, models.Game{ID: 5, Title: "Tetris"}, "2024-01-01", models.StatusPlaying, 15)
	addTestLog(t, repo, models.Game{ID: 5, Title: "Tetris"}, "2024-01-02", models.StatusPlaying, 15)

	for i := 0; i < 2; i++ {
		got, err := repo.DeleteLog(id)
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, 1, countRows(t, repo, "logs"))
		assert.Equal(t, 1, countRows(t, repo, "logged_games"))
	}

	_, err := repo.GetLogByID(id)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestReadLogs_MissingGameIsDataIntegrity(t *testing.T) {
	repo := setupTestRepo(t)
	addTestLog(t, repo, models.Game{ID: 1, Title: "Celeste"}, "2024-01-01", models.StatusPlaying, 10)

	var orphanID int64
	err := repo.handle.withLock(func(db *sql.DB) error {
		if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
			return err
		}
		res, err := db.Exec("INSERT INTO logs (game_id, date, status) VALUES (999, '2024-01-02', 'playing')")
		if err != nil {
			return err
		}
		orphanID, err = res.LastInsertId()
		return err
	})
	require.NoError(t, err)

	_, err = repo.GetLogByID(orphanID)
	assert.True(t, errors.Is(err, shared.ErrDataIntegrity), "got %v", err)

	_, err = repo.GetLogs("date", "asc", nil)
	assert.True(t, errors.Is(err, shared.ErrDataIntegrity), "got %v", err)

	_, err = repo.GetRecentLogs(5, nil)
	assert.True(t, errors.Is(err, shared.ErrDataIntegrity), "got %v", err)
}
