// filepath: internal/cli/recovery_command.go
package cli

import (
	"fmt"
	"gamelog/internal/logging"
	"io"

	"github.com/spf13/cobra"
)

type RecoveryOptions struct {
	DryRun bool // If true, report only without editing
}

func NewRecoveryCommand(globalOptions *GlobalOptions) *cobra.Command {

	recoveryOptions := &RecoveryOptions{DryRun: false}

	recoveryCommand := &cobra.Command{
		Use:   "recovery",
		Short: "Repair logs that point at games missing from the catalogue",
		Long: `Scans the store for logs and executable mappings whose game has no catalogue row
(e.g., after editing the file by hand) and inserts a placeholder game for each,
so that those logs can be listed again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecovery(cmd, globalOptions, recoveryOptions)
		},
	}

	recoveryOptions.registerFlags(recoveryCommand)

	return recoveryCommand
}

func (opt *RecoveryOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opt.DryRun, "dryrun", false, "If true, report only without editing.")
}

func runRecovery(cmd *cobra.Command, globalOptions *GlobalOptions, recoveryOptions *RecoveryOptions) error {
	tracker, closeStore, err := globalOptions.openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	logging.Log.Info("Starting recovery process...")

	ids, err := tracker.RepairOrphanedGames(cmd.Context(), recoveryOptions.DryRun)
	if err != nil {
		return err
	}

	logging.Log.Infof("Recovery complete. Orphaned games found: %d", len(ids))
	result := map[string]interface{}{"dry_run": recoveryOptions.DryRun, "game_ids": ids}
	return newPrinter(cmd, globalOptions).print(result, func(w io.Writer) {
		verb := "Repaired"
		if recoveryOptions.DryRun {
			verb = "Would repair"
		}
		fmt.Fprintf(w, "%s\t%d game(s) %v\n", verb, len(ids), ids)
	})
}
