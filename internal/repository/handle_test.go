// filepath: internal/repository/handle_test.go
package repository

import (
	"database/sql"
	"errors"
	"gamelog/internal/models"
	"gamelog/internal/shared"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "data.db")
	handle, err := Initialize(path)
	require.NoError(t, err)
	defer handle.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	err = handle.withLock(func(db *sql.DB) error {
		missing, err := missingTables(db)
		assert.Empty(t, missing)
		return err
	})
	require.NoError(t, err)
}

func TestInitialize_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	first, err := Initialize(path)
	require.NoError(t, err)
	repo := NewRepository(first, 0)
	addTestLog(t, repo, models.Game{ID: 1, Title: "Celeste"}, "2024-02-01", models.StatusCompleted, 300)
	require.NoError(t, repo.Close())

	second, err := Initialize(path)
	require.NoError(t, err)
	repo = NewRepository(second, 0)
	defer repo.Close()

	assert.Equal(t, 1, countRows(t, repo, "logs"))
	assert.Equal(t, 1, countRows(t, repo, "logged_games"))
}

func TestInitialize_Failures(t *testing.T) {
	dir := t.TempDir()

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	corrupt := filepath.Join(dir, "corrupt.db")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is definitely not an sqlite database file, just some text padding it out"), 0644))

	tests := []struct {
		name     string
		location string
	}{
		{"empty location", ""},
		{"parent is a file", filepath.Join(blocker, "sub", "data.db")},
		{"corrupt file", corrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := Initialize(tt.location)
			assert.Nil(t, handle)
			assert.True(t, errors.Is(err, shared.ErrStorageInit), "got %v", err)
		})
	}
}

func TestHandle_Close(t *testing.T) {
	handle, err := Initialize(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)

	require.NoError(t, handle.Close())
	require.NoError(t, handle.Close())

	err = handle.withLock(func(db *sql.DB) error { return nil })
	assert.True(t, errors.Is(err, shared.ErrQueryExecution))
}

func TestHandle_BackupTo(t *testing.T) {
	repo := setupTestRepo(t)
	addTestLog(t, repo, models.Game{ID: 3, Title: "Outer Wilds"}, "2024-03-01", models.StatusCompleted, 900)

	dest := filepath.Join(t.TempDir(), "snapshots", "copy.db")
	require.NoError(t, repo.Handle().BackupTo(dest))

	copyHandle, err := Initialize(dest)
	require.NoError(t, err)
	copyRepo := NewRepository(copyHandle, 0)
	defer copyRepo.Close()

	entries, err := copyRepo.GetLogs("id", "asc", nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Outer Wilds", entries[0].Game.Title)
}

func TestHandle_SerializesConcurrentWriters(t *testing.T) {
	repo := setupTestRepo(t)

	const writers = 8
	const perWriter = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := repo.AddLog(models.LogEntryInput{
					Date:   "2024-04-01",
					Status: models.StatusPlaying,
					Game:   models.Game{ID: int64(w + 1), Title: "Game"},
				})
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, writers*perWriter, countRows(t, repo, "logs"))
	assert.Equal(t, writers, countRows(t, repo, "logged_games"))
}
