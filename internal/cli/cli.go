// filepath: internal/cli/cli.go
package cli

import (
	"fmt"
	"gamelog/internal/audit"
	"gamelog/internal/config"
	"gamelog/internal/repository"
	"gamelog/internal/services"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "0.1.0"

type GlobalOptions struct {
	CfgFilePath  string
	LogLevel     string
	DBPath       string
	CacheTTL     string
	AuditEnabled bool
	JSON         bool

	Conf *config.Config
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:           "gamelog",
		Short:         "Game activity tracker",
		Long:          "Records play sessions against catalogued games, maps executables to games and reports play statistics.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(globalOptions, cmd)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewInitCommand(globalOptions))
	rootCMD.AddCommand(NewStatsCommand(globalOptions))
	rootCMD.AddCommand(NewLogsCommand(globalOptions))
	rootCMD.AddCommand(NewExeCommand(globalOptions))
	rootCMD.AddCommand(NewGameCommand(globalOptions))
	rootCMD.AddCommand(NewBackupCommand(globalOptions))
	rootCMD.AddCommand(NewRecoveryCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, flagConfigPath, defaultConfigPath(), "Path to the configuration file. (Env: GAMELOG_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, flagLogLevel, "", "Logging level (trace, debug, info, warn, error). (Env: GAMELOG_LOGGING_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.DBPath, flagDBPath, "", "Path to the store file. (Env: GAMELOG_DATABASE_PATH)")
	cmd.PersistentFlags().StringVar(&options.CacheTTL, flagCacheTTL, "", "Read cache lifetime, e.g. '5m'; '0' disables it. (Env: GAMELOG_CACHE_TTL)")
	cmd.PersistentFlags().BoolVar(&options.AuditEnabled, flagAuditEnabled, false, "Write an audit event for every change. (Env: GAMELOG_LOGGING_AUDIT_ENABLED=true)")
	cmd.PersistentFlags().BoolVar(&options.JSON, "json", false, "Print results as JSON even on a terminal.")
}

// openTracker opens the configured store and wraps it in the tracker service.
// The returned function closes the store.
func (options *GlobalOptions) openTracker() (services.TrackerService, func(), error) {
	repo, err := repository.Open(options.Conf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	auditor := audit.NewLoggerAuditor(options.Conf.Logging.AuditEnabled)
	return services.NewTrackerService(repo, auditor), func() { repo.Close() }, nil
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
