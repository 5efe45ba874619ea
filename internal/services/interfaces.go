// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"gamelog/internal/models"
)

// Auditor records mutations made through the tracker.
type Auditor interface {
	// Log records an event.
	// action: what happened (e.g., "log.add", "log.delete")
	// resource: what was affected (e.g., "log:12", "exe:hades.exe")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, resource string, details map[string]interface{})
}

// LogStore is the persistence the tracker runs on. *repository.Repository implements it.
type LogStore interface {
	GetDashboardStatistics(start, end string) (models.DashboardStatistics, error)
	GetRecentLogs(limit int, statuses []string) ([]models.LogEntry, error)
	GetLogs(sortColumn, sortDirection string, statuses []string) ([]models.LogEntry, error)
	GetLogByID(id int64) (models.LogEntry, error)
	AddLog(input models.LogEntryInput) (int64, error)
	UpdateLog(update models.LogEntryUpdate) (int64, error)
	DeleteLog(id int64) (int64, error)
	AddExecutableDetails(details models.ExecutableDetails) (int64, error)
	GetExecutableDetails(name string) (models.ExecutableDetails, error)
	GetLoggedGame(id int64) (models.Game, error)
	Backup(dir string) (models.BackupReport, error)
	RepairOrphanedGames(dryRun bool) ([]int64, error)
}

// TrackerService validates host input and forwards it to the store.
type TrackerService interface {
	GetDashboardStatistics(start, end string) (models.DashboardStatistics, error)
	GetRecentLogs(limit int, statuses []string) ([]models.LogEntry, error)
	GetLogs(sortColumn, sortDirection string, statuses []string) ([]models.LogEntry, error)
	GetLogByID(id int64) (models.LogEntry, error)
	AddLog(ctx context.Context, input models.LogEntryInput) (int64, error)
	UpdateLog(ctx context.Context, update models.LogEntryUpdate) (int64, error)
	DeleteLog(ctx context.Context, id int64) (int64, error)
	AddExecutableDetails(ctx context.Context, details models.ExecutableDetails) (int64, error)
	GetExecutableDetails(name string) (models.ExecutableDetails, error)
	GetLoggedGame(id int64) (models.Game, error)
	Backup(ctx context.Context, dir string) (models.BackupReport, error)
	RepairOrphanedGames(ctx context.Context, dryRun bool) ([]int64, error)
}
