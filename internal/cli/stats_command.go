// filepath: internal/cli/stats_command.go
package cli

import (
	"fmt"
	"gamelog/internal/shared"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type StatsOptions struct {
	From string
	To   string
}

func NewStatsCommand(globalOptions *GlobalOptions) *cobra.Command {

	statsOptions := &StatsOptions{}

	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics for a date range",
		Long:  "Sums minutes played and counts played and completed logs dated within [--from, --to]. Wishlist logs are not counted as played.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, globalOptions, statsOptions)
		},
	}

	now := time.Now()
	statsCommand.Flags().StringVar(&statsOptions.From, "from", time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.Local).Format(shared.DateLayout), "First day of the range (YYYY-MM-DD).")
	statsCommand.Flags().StringVar(&statsOptions.To, "to", now.Format(shared.DateLayout), "Last day of the range (YYYY-MM-DD).")

	return statsCommand
}

func runStats(cmd *cobra.Command, globalOptions *GlobalOptions, statsOptions *StatsOptions) error {
	tracker, closeStore, err := globalOptions.openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := tracker.GetDashboardStatistics(statsOptions.From, statsOptions.To)
	if err != nil {
		return err
	}

	return newPrinter(cmd, globalOptions).print(stats, func(w io.Writer) {
		fmt.Fprintf(w, "Range\t%s .. %s\n", statsOptions.From, statsOptions.To)
		fmt.Fprintf(w, "Time played\t%dh %02dm\n", stats.TotalMinutesPlayed/60, stats.TotalMinutesPlayed%60)
		fmt.Fprintf(w, "Games played\t%d\n", stats.TotalGamesPlayed)
		fmt.Fprintf(w, "Games completed\t%d\n", stats.TotalGamesCompleted)
	})
}
