// filepath: internal/cli/exe_command.go
package cli

import (
	"fmt"
	"gamelog/internal/models"
	"io"

	"github.com/spf13/cobra"
)

func NewExeCommand(globalOptions *GlobalOptions) *cobra.Command {

	exeCommand := &cobra.Command{
		Use:   "exe",
		Short: "Map executables to games",
	}

	exeCommand.AddCommand(&cobra.Command{
		Use:   "add NAME GAME_ID",
		Short: "Map an executable name to a logged game",
		Long:  "Adds a mapping from an executable name to a game. Mapping a name again makes the new game win.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[1])
			if err != nil {
				return err
			}
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			id, err := tracker.AddExecutableDetails(cmd.Context(), models.ExecutableDetails{Name: args[0], GameID: gameID})
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).id("mapped", id)
		},
	})

	exeCommand.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "Show the game an executable maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closeStore, err := globalOptions.openTracker()
			if err != nil {
				return err
			}
			defer closeStore()

			details, err := tracker.GetExecutableDetails(args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).print(details, func(w io.Writer) {
				fmt.Fprintf(w, "Executable\t%s\n", details.Name)
				fmt.Fprintf(w, "Game\t%d\n", details.GameID)
			})
		},
	})

	return exeCommand
}

func NewGameCommand(globalOptions *GlobalOptions) *cobra.Command {

	gameCommand := &cobra.Command{
		Use:   "game",
		Short: "Inspect logged games",
	}

	gameCommand.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show a logged game",
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

			game, err := tracker.GetLoggedGame(id)
			if err != nil {
				return err
			}
			return newPrinter(cmd, globalOptions).print(game, func(w io.Writer) {
				fmt.Fprintf(w, "ID\t%d\n", game.ID)
				fmt.Fprintf(w, "Title\t%s\n", game.Title)
				fmt.Fprintf(w, "Cover\t%s\n", game.CoverID)
			})
		},
	})

	return gameCommand
}
