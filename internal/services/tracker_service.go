// filepath: internal/services/tracker_service.go
package services

import (
	"context"
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"time"
)

var _ TrackerService = (*trackerService)(nil)

// trackerService validates requests before they reach the store and audits mutations.
type trackerService struct {
	Store   LogStore
	Auditor Auditor
	Now     func() time.Time
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(store LogStore, auditor Auditor) *trackerService {
	return &trackerService{
		Store:   store,
		Auditor: auditor,
		Now:     time.Now,
	}
}

// === Pass-through Store Methods ===

func (s *trackerService) GetRecentLogs(limit int, statuses []string) ([]models.LogEntry, error) {
	return s.Store.GetRecentLogs(limit, statuses)
}

func (s *trackerService) GetLogs(sortColumn, sortDirection string, statuses []string) ([]models.LogEntry, error) {
	return s.Store.GetLogs(sortColumn, sortDirection, statuses)
}

func (s *trackerService) GetLogByID(id int64) (models.LogEntry, error) {
	return s.Store.GetLogByID(id)
}

func (s *trackerService) GetExecutableDetails(name string) (models.ExecutableDetails, error) {
	return s.Store.GetExecutableDetails(name)
}

func (s *trackerService) GetLoggedGame(id int64) (models.Game, error) {
	return s.Store.GetLoggedGame(id)
}

// === Validated Methods ===

// GetDashboardStatistics normalizes both bounds to YYYY-MM-DD before the
// store compares them as text.
func (s *trackerService) GetDashboardStatistics(start, end string) (models.DashboardStatistics, error) {
	from, to, err := ValidateDateRange(start, end)
	if err != nil {
		return models.DashboardStatistics{}, err
	}
	return s.Store.GetDashboardStatistics(from, to)
}

func (s *trackerService) AddLog(ctx context.Context, input models.LogEntryInput) (int64, error) {
	input, err := ValidateLogInput(input, s.Now())
	if err != nil {
		return 0, err
	}

	id, err := s.Store.AddLog(input)
	if err != nil {
		return 0, err
	}

	logging.Log.Infof("Added log %d for game %d", id, input.Game.ID)
	s.Auditor.Log(ctx, "log.add", fmt.Sprintf("log:%d", id), map[string]interface{}{
		"game_id":        input.Game.ID,
		"date":           input.Date,
		"status":         input.Status,
		"minutes_played": input.MinutesPlayed,
	})
	return id, nil
}

func (s *trackerService) UpdateLog(ctx context.Context, update models.LogEntryUpdate) (int64, error) {
	update, err := ValidateLogUpdate(update, s.Now())
	if err != nil {
		return 0, err
	}

	id, err := s.Store.UpdateLog(update)
	if err != nil {
		return 0, err
	}

	s.Auditor.Log(ctx, "log.update", fmt.Sprintf("log:%d", id), map[string]interface{}{
		"date":           update.Date,
		"status":         update.Status,
		"rating":         update.Rating,
		"minutes_played": update.MinutesPlayed,
	})
	return id, nil
}

func (s *trackerService) DeleteLog(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.Store.DeleteLog(id)
	if err != nil {
		return 0, err
	}
	s.Auditor.Log(ctx, "log.delete", fmt.Sprintf("log:%d", id), nil)
	return deleted, nil
}

func (s *trackerService) AddExecutableDetails(ctx context.Context, details models.ExecutableDetails) (int64, error) {
	if err := ValidateExecutableDetails(details); err != nil {
		return 0, err
	}

	id, err := s.Store.AddExecutableDetails(details)
	if err != nil {
		return 0, err
	}
	s.Auditor.Log(ctx, "exe.add", "exe:"+details.Name, map[string]interface{}{
		"game_id": details.GameID,
	})
	return id, nil
}

// === Maintenance ===

func (s *trackerService) Backup(ctx context.Context, dir string) (models.BackupReport, error) {
	report, err := s.Store.Backup(dir)
	if err != nil {
		return models.BackupReport{}, err
	}
	s.Auditor.Log(ctx, "store.backup", report.Path, map[string]interface{}{
		"size_bytes": report.SizeBytes,
	})
	return report, nil
}

func (s *trackerService) RepairOrphanedGames(ctx context.Context, dryRun bool) ([]int64, error) {
	ids, err := s.Store.RepairOrphanedGames(dryRun)
	if err != nil {
		return nil, err
	}
	if !dryRun && len(ids) > 0 {
		s.Auditor.Log(ctx, "store.repair", "logged_games", map[string]interface{}{
			"placeholders": len(ids),
		})
	}
	return ids, nil
}
