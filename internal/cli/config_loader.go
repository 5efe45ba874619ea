// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"gamelog/internal/config"
	"gamelog/internal/logging"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GAMELOG"

const (
	flagConfigPath   = "config_path"
	flagLogLevel     = "log-level"
	flagDBPath       = "db"
	flagCacheTTL     = "cache-ttl"
	flagAuditEnabled = "audit-enabled"
)

// Config keys, named after their place in the TOML file so that the
// environment variable is GAMELOG_ plus the key in upper case.
const (
	keyConfigPath   = "config_path"
	keyDBPath       = "database.path"
	keyLogLevel     = "logging.level"
	keyAuditEnabled = "logging.audit_enabled"
	keyCacheTTL     = "cache.ttl"
	keyBackupDir    = "backup.dir"
)

var flagKeys = map[string]string{
	flagConfigPath:   keyConfigPath,
	flagDBPath:       keyDBPath,
	flagLogLevel:     keyLogLevel,
	flagAuditEnabled: keyAuditEnabled,
	flagCacheTTL:     keyCacheTTL,
}

func defaultConfigPath() string {
	return filepath.Join(config.DefaultDataDir(), "config.toml")
}

// newViper binds the environment and the given flags.
// A flag only counts as set when it was given on the command line.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return v, nil
}

// initializeConfig loads the config file and applies overrides in the order
// flags > environment > file > defaults.
func initializeConfig(options *GlobalOptions, cmd *cobra.Command) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}

	cfgFile := v.GetString(keyConfigPath)
	if cfgFile == "" {
		cfgFile = defaultConfigPath()
	}
	options.CfgFilePath = cfgFile

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg, v)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)

	options.Conf = cfg
	return nil
}

func applyOverrides(c *config.Config, v *viper.Viper) {
	if v.IsSet(keyDBPath) {
		c.Database.Path = v.GetString(keyDBPath)
	}
	if v.IsSet(keyLogLevel) {
		c.Logging.Level = v.GetString(keyLogLevel)
	}
	if v.IsSet(keyAuditEnabled) {
		c.Logging.AuditEnabled = v.GetBool(keyAuditEnabled)
	}
	if v.IsSet(keyCacheTTL) {
		c.Cache.TTL = v.GetString(keyCacheTTL)
	}
	if v.IsSet(keyBackupDir) {
		c.Backup.Dir = v.GetString(keyBackupDir)
	}
}
