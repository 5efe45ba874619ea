// filepath: internal/cli/logs_command.go
package cli

import (
	"fmt"
	"gamelog/internal/models"
	"gamelog/internal/services"
	"gamelog/internal/shared"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type LogsOptions struct {
	Limit    int
	Sort     string
	Order    string
	Statuses []string
	GameID   int64
	Title    string
	CoverID  string
	Date     string
	Rating   int
	Notes    string
	Status   string
	Hours    int
	Minutes  int
}

func NewLogsCommand(globalOptions *GlobalOptions) *cobra.Command {

	logsCommand := &cobra.Command{
		Use:   "logs",
		Short: "List, show and edit play logs",
	}

	logsCommand.AddCommand(newLogsRecentCommand(globalOptions))
	logsCommand.AddCommand(newLogsListCommand(globalOptions))
	logsCommand.AddCommand(newLogsShowCommand(globalOptions))
	logsCommand.AddCommand(newLogsAddCommand(globalOptions))
	logsCommand.AddCommand(newLogsUpdateCommand(globalOptions))
	logsCommand.AddCommand(newLogsDeleteCommand(globalOptions))

	return logsCommand
}

func statusHelp() string {
	return "Only show logs with this status; repeatable (" + strings.Join(models.Statuses, ", ") + ")."
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", shared.ErrValidation, arg)
	}
	return id, nil
}

func newLogsRecentCommand(globalOptions *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent logs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := tracker.GetRecentLogs(opts.Limit, opts.Statuses)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).logs(entries)
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "Maximum number of logs to show.")
	cmd.Flags().StringSliceVar(&opts.Statuses, "status", nil, statusHelp())
	return cmd
}

func newLogsListCommand(globalOptions *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every log in a chosen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := tracker.GetLogs(opts.Sort, opts.Order, opts.Statuses)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).logs(entries)
		},
	}
	cmd.Flags().StringVar(&opts.Sort, "sort", "date", "Sort column (id, date, title, rating, status, minutes_played, created_at, updated_at).")
	cmd.Flags().StringVar(&opts.Order, "order", "desc", "Sort direction (asc, desc).")
	cmd.Flags().StringSliceVar(&opts.Statuses, "status", nil, statusHelp())
	return cmd
}

func newLogsShowCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a single log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			entry, err := tracker.GetLogByID(id)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).log(entry)
		},
	}
}

func newLogsAddCommand(globalOptions *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a play session",
		Long:  "Records a play session. The game is added to the catalogue the first time it is logged; later logs never change its title or cover.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := services.MinutesFromDuration(opts.Hours, opts.Minutes)
			if err != nil {
				return err
			}
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := tracker.AddLog(cmd.Context(), models.LogEntryInput{
				Date:          opts.Date,
				Rating:        opts.Rating,
				Notes:         opts.Notes,
				Status:        opts.Status,
				MinutesPlayed: minutes,
				Game:          models.Game{ID: opts.GameID, Title: opts.Title, CoverID: opts.CoverID},
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).id("added", id)
		},
	}
	cmd.Flags().Int64Var(&opts.GameID, "game-id", 0, "Catalogue id of the game.")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Title of the game.")
	cmd.Flags().StringVar(&opts.CoverID, "cover", "", "Catalogue cover id of the game.")
	registerLogFieldFlags(cmd, opts)
	cmd.MarkFlagRequired("game-id")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newLogsUpdateCommand(globalOptions *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the date, rating, notes, status or time of a log",
		Long:  "Changes the given fields of a log and keeps the others. The game a log belongs to cannot be changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			current, err := tracker.GetLogByID(id)
			if err != nil {
				return err
			}
			update, err := mergeLogUpdate(cmd, current, opts)
			if err != nil {
				return err
			}

			id, err = tracker.UpdateLog(cmd.Context(), update)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).id("updated", id)
		},
	}
	registerLogFieldFlags(cmd, opts)
	return cmd
}

func newLogsDeleteCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a log; the game stays in the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			id, err = tracker.DeleteLog(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).id("deleted", id)
		},
	}
}

func registerLogFieldFlags(cmd *cobra.Command, opts *LogsOptions) {
	cmd.Flags().StringVar(&opts.Date, "date", time.Now().Format(shared.DateLayout), "Day played (YYYY-MM-DD).")
	cmd.Flags().IntVar(&opts.Rating, "rating", 0, "Rating from 0 to 10.")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringVar(&opts.Status, "status", models.StatusPlaying, "Status ("+strings.Join(models.Statuses, ", ")+").")
	cmd.Flags().IntVar(&opts.Hours, "hours", 0, "Hours played.")
	cmd.Flags().IntVar(&opts.Minutes, "minutes", 0, "Minutes played on top of --hours (0-59).")
}

// mergeLogUpdate overlays the flags given on the command line onto the current log.
func mergeLogUpdate(cmd *cobra.Command, current models.LogEntry, opts *LogsOptions) (models.LogEntryUpdate, error) {
	update := models.LogEntryUpdate{
		ID:            current.ID,
		Date:          current.Date,
		Rating:        current.Rating,
		Notes:         current.Notes,
		Status:        current.Status,
		MinutesPlayed: current.MinutesPlayed,
	}

	flags := cmd.Flags()
	if flags.Changed("date") {
		update.Date = opts.Date
	}
	if flags.Changed("rating") {
		update.Rating = opts.Rating
	}
	if flags.Changed("notes") {
		update.Notes = opts.Notes
	}
	if flags.Changed("status") {
		update.Status = opts.Status
	}
	if flags.Changed("hours") || flags.Changed("minutes") {
		minutes, err := services.MinutesFromDuration(opts.Hours, opts.Minutes)
		if err != nil {
			return models.LogEntryUpdate{}, err
		}
		update.MinutesPlayed = minutes
	}
	return update, nil
}
