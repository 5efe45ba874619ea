// filepath: internal/initconfig/init.go
package initconfig

import (
	"context"
	"errors"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"gamelog/internal/services"
	"gamelog/internal/shared"
	"os"

	"github.com/BurntSushi/toml"
)

// ImportedSuffix is appended to an import file once it has been processed,
// so that the next start does not import it again.
const ImportedSuffix = ".imported"

// Run imports the logs and executable mappings listed in the TOML file at path.
// Entries that fail validation are skipped and counted; a store failure stops the import.
func Run(ctx context.Context, tracker services.TrackerService, path string) (Report, error) {
	logging.Log.Infof("Import file found at: %s. Processing...", path)

	var report Report
	var config InitConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return report, fmt.Errorf("parsing import file '%s': %w", path, err)
	}

	logging.Log.Infof("Found %d log(s) and %d executable(s) in import file.", len(config.Logs), len(config.Executables))

	if err := processLogs(ctx, tracker, config.Logs, &report); err != nil {
		return report, err
	}
	if err := processExecutables(ctx, tracker, config.Executables, &report); err != nil {
		return report, err
	}

	markImported(path)
	return report, nil
}

func processLogs(ctx context.Context, tracker services.TrackerService, logs []InitLog, report *Report) error {
	for i, l := range logs {
		minutes, err := services.MinutesFromDuration(l.Hours, l.Minutes)
		if err != nil {
			logging.Log.Warnf("Skipping log #%d (%s): %v", i+1, l.Game.Title, err)
			report.Skipped++
			continue
		}

		_, err = tracker.AddLog(ctx, models.LogEntryInput{
			Date:          l.Date,
			Rating:        l.Rating,
			Notes:         l.Notes,
			Status:        l.Status,
			MinutesPlayed: minutes,
			Game:          models.Game{ID: l.Game.ID, Title: l.Game.Title, CoverID: l.Game.CoverID},
		})
		if errors.Is(err, shared.ErrValidation) {
			logging.Log.Warnf("Skipping log #%d (%s): %v", i+1, l.Game.Title, err)
			report.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("importing log #%d: %w", i+1, err)
		}
		report.LogsAdded++
	}
	return nil
}

// processExecutables adds each mapping unless the name already resolves to the
// same game. Mappings to a game the store does not know are skipped.
func processExecutables(ctx context.Context, tracker services.TrackerService, executables []InitExecutable, report *Report) error {
	for _, e := range executables {
		if err := checkExecutableGame(tracker, e); err != nil {
			if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrValidation) {
				logging.Log.Warnf("Skipping executable '%s': %v", e.Name, err)
				report.Skipped++
				continue
			}
			return fmt.Errorf("checking game of executable '%s': %w", e.Name, err)
		}

		existing, err := tracker.GetExecutableDetails(e.Name)
		if err == nil && existing.GameID == e.GameID {
			logging.Log.Infof("Skipping executable: '%s' already maps to game %d.", e.Name, e.GameID)
			report.Skipped++
			continue
		}
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("checking executable '%s': %w", e.Name, err)
		}

		_, err = tracker.AddExecutableDetails(ctx, models.ExecutableDetails{Name: e.Name, GameID: e.GameID})
		if errors.Is(err, shared.ErrValidation) {
			logging.Log.Warnf("Skipping executable '%s': %v", e.Name, err)
			report.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("importing executable '%s': %w", e.Name, err)
		}
		report.ExecutablesAdded++
	}
	return nil
}

// checkExecutableGame validates a mapping and checks that its game is stored.
func checkExecutableGame(tracker services.TrackerService, e InitExecutable) error {
	if err := services.ValidateExecutableDetails(models.ExecutableDetails{Name: e.Name, GameID: e.GameID}); err != nil {
		return err
	}
	_, err := tracker.GetLoggedGame(e.GameID)
	return err
}

// markImported renames the processed file. Failure only warns; the data is already stored.
func markImported(path string) {
	if err := os.Rename(path, path+ImportedSuffix); err != nil {
		logging.Log.Warnf("Failed to rename import file '%s': %v", path, err)
		logging.Log.Warnf("Remove '%s' manually to avoid importing it twice", path)
		return
	}
	logging.Log.Infof("Import file renamed to '%s'", path+ImportedSuffix)
}
