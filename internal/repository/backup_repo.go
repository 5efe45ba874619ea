// filepath: internal/repository/backup_repo.go
package repository

import (
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/shared"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// Backup writes a snapshot of the store into dir. Snapshot names are ULIDs,
// so a directory listing sorts them oldest first.
func (s *Repository) Backup(dir string) (models.BackupReport, error) {
	dest := filepath.Join(dir, ulid.Make().String()+".db")
	if err := s.handle.BackupTo(dest); err != nil {
		logging.Log.Errorf("Error backing up store to %s: %v", dest, err)
		return models.BackupReport{}, err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return models.BackupReport{}, fmt.Errorf("%w: reading snapshot %s: %w", shared.ErrQueryExecution, dest, err)
	}

	logging.Log.Infof("Store snapshot written to %s (%d bytes)", dest, info.Size())
	return models.BackupReport{Source: s.handle.Path(), Path: dest, SizeBytes: info.Size()}, nil
}
