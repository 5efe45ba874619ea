// filepath: internal/cli/backup_command.go
package cli

import (
	"fmt"
	"gamelog/internal/housekeeping"
	"gamelog/internal/logging"
	"gamelog/internal/models"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type BackupOptions struct {
	Dir     string
	NoPrune bool
}

type backupResult struct {
	models.BackupReport
	Housekeeping *models.HousekeepingReport `json:"housekeeping,omitempty"`
}

func NewBackupCommand(globalOptions *GlobalOptions) *cobra.Command {

	backupOptions := &BackupOptions{}

	backupCommand := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent snapshot of the store",
		Long:  "Writes a copy of the store to the backup directory. Snapshot files are named by ULID so they sort by creation time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := backupOptions.Dir
			if dir == "" {
				dir = globalOptions.Conf.Backup.Dir
			}

			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			report, err := tracker.Backup(cmd.Context(), dir)
			if err != nil {
				return err
			}

			result := backupResult{BackupReport: report}
			if !backupOptions.NoPrune {
				rules := housekeeping.Rules{MaxAge: globalOptions.Conf.BackupMaxAge, Keep: globalOptions.Conf.Backup.Keep}
				hk, err := housekeeping.PruneSnapshots(dir, rules, time.Now())
				if err != nil {
					logging.Log.Warnf("Snapshot written but pruning failed: %v", err)
				}
				result.Housekeeping = hk
			}

			return newPrinter(cmd, globalOptions).print(result, func(w io.Writer) {
				fmt.Fprintf(w, "Store\t%s\n", report.Source)
				fmt.Fprintf(w, "Snapshot\t%s\n", report.Path)
				fmt.Fprintf(w, "Size\t%d bytes\n", report.SizeBytes)
				if result.Housekeeping != nil {
					fmt.Fprintf(w, "Pruned\t%d snapshot(s)\n", result.Housekeeping.SnapshotsDeleted)
				}
			})
		},
	}

	backupCommand.Flags().StringVar(&backupOptions.Dir, "dir", "", "Directory to write the snapshot to. (Env: GAMELOG_BACKUP_DIR)")
	backupCommand.Flags().BoolVar(&backupOptions.NoPrune, "no-prune", false, "Keep every snapshot regardless of backup.max_age and backup.keep.")

	return backupCommand
}
