// filepath: internal/cli/init_command.go
package cli

import (
	"fmt"
	"gamelog/internal/config"
	"gamelog/internal/initconfig"
	"gamelog/internal/logging"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type InitOptions struct {
	ImportPath string
}

func NewInitCommand(globalOptions *GlobalOptions) *cobra.Command {

	initOptions := &InitOptions{}

	initCommand := &cobra.Command{
		Use:   "init",
		Short: "Create the store and a default configuration file",
		Long: `Creates the store file and its tables if they do not exist yet and writes the
resolved configuration to the config path when no file is there. With --import,
logs and executable mappings from a TOML file are added afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, globalOptions, initOptions)
		},
	}

	initCommand.Flags().StringVar(&initOptions.ImportPath, "import", "", "Path to a TOML file of [[log]] and [[executable]] entries to import. (Env: GAMELOG_IMPORT)")

	return initCommand
}

func runInit(cmd *cobra.Command, globalOptions *GlobalOptions, initOptions *InitOptions) error {
	if _, err := os.Stat(globalOptions.CfgFilePath); os.IsNotExist(err) {
		if err := config.SaveConfig(globalOptions.CfgFilePath, globalOptions.Conf); err != nil {
			return err
		}
		logging.Log.Infof("Wrote configuration to %s", globalOptions.CfgFilePath)
	}

	tracker, closeStore, err := globalOptions.openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	importPath := initOptions.ImportPath
	if importPath == "" {
		importPath = os.Getenv(envPrefix + "_IMPORT")
	}

	p := newPrinter(cmd, globalOptions)
	if importPath == "" {
		return p.print(map[string]string{"store": globalOptions.Conf.Database.Path}, func(w io.Writer) {
			fmt.Fprintf(w, "Store\t%s\n", globalOptions.Conf.Database.Path)
		})
	}

	report, err := initconfig.Run(cmd.Context(), tracker, importPath)
	if err != nil {
		return err
	}
	return p.print(report, func(w io.Writer) {
		fmt.Fprintf(w, "Store\t%s\n", globalOptions.Conf.Database.Path)
		fmt.Fprintf(w, "Logs added\t%d\n", report.LogsAdded)
		fmt.Fprintf(w, "Executables added\t%d\n", report.ExecutablesAdded)
		fmt.Fprintf(w, "Skipped\t%d\n", report.Skipped)
	})
}
