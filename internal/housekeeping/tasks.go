// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const snapshotExt = ".db"

// Rules bound how many store snapshots a backup directory keeps.
// A zero value disables the corresponding rule.
type Rules struct {
	MaxAge time.Duration
	Keep   int
}

type snapshot struct {
	path      string
	created   time.Time
	sizeBytes int64
}

// PruneSnapshots deletes snapshots in dir that break the rules, oldest first.
// Files whose name is not a ULID are never touched.
func PruneSnapshots(dir string, rules Rules, now time.Time) (*models.HousekeepingReport, error) {
	snapshots, err := listSnapshots(dir)
	if err != nil {
		return nil, err
	}

	report := &models.HousekeepingReport{}

	// 1. Cleanup by Age
	remaining := cleanupByAge(snapshots, rules.MaxAge, now, report)

	// 2. Cleanup by Count
	cleanupByCount(remaining, rules.Keep, report)

	report.Message = fmt.Sprintf("Housekeeping complete for '%s'. %d snapshot(s) deleted, freeing %s.",
		dir, report.SnapshotsDeleted, formatBytes(report.SpaceFreedBytes))
	return report, nil
}

// listSnapshots returns the snapshots in dir sorted oldest first.
func listSnapshots(dir string) ([]snapshot, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list snapshots in %s: %w", dir, err)
	}

	var snapshots []snapshot
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		id, err := ulid.ParseStrict(strings.TrimSuffix(name, snapshotExt))
		if err != nil {
			logging.Log.Debugf("Housekeeping: skipping foreign file %s", name)
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, snapshot{
			path:      filepath.Join(dir, name),
			created:   ulid.Time(id.Time()),
			sizeBytes: info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].created.Before(snapshots[j].created) })
	return snapshots, nil
}

// cleanupByAge deletes snapshots older than maxAge and returns the rest.
func cleanupByAge(snapshots []snapshot, maxAge time.Duration, now time.Time, report *models.HousekeepingReport) []snapshot {
	if maxAge == 0 {
		logging.Log.Debug("Housekeeping cleanup by age is disabled (max_age is 0).")
		return snapshots
	}

	cutoff := now.Add(-maxAge)
	i := 0
	for i < len(snapshots) && snapshots[i].created.Before(cutoff) {
		i++
	}
	if i > 0 {
		logging.Log.Infof("Found %d snapshot(s) older than %s. Deleting...", i, maxAge)
		deleteSnapshots(snapshots[:i], report)
	}
	return snapshots[i:]
}

// cleanupByCount deletes the oldest snapshots beyond the newest keep.
func cleanupByCount(snapshots []snapshot, keep int, report *models.HousekeepingReport) {
	if keep == 0 {
		logging.Log.Debug("Housekeeping cleanup by count is disabled (keep is 0).")
		return
	}
	excess := len(snapshots) - keep
	if excess <= 0 {
		return
	}
	logging.Log.Infof("Keeping the newest %d snapshot(s); deleting %d.", keep, excess)
	deleteSnapshots(snapshots[:excess], report)
}

func deleteSnapshots(snapshots []snapshot, report *models.HousekeepingReport) {
	for _, s := range snapshots {
		if err := os.Remove(s.path); err != nil {
			logging.Log.Warnf("Housekeeping: Failed to delete snapshot %s: %v", s.path, err)
			continue
		}
		report.SnapshotsDeleted++
		report.SpaceFreedBytes += s.sizeBytes
	}
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
