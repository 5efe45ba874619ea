// filepath: internal/config/config.go
package config

import (
	"fmt"
	"gamelog/internal/logging"
	"gamelog/internal/shared"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Cache    CacheConfig    `toml:"cache"`
	Backup   BackupConfig   `toml:"backup"`

	CacheTTL     time.Duration `toml:"-"` // Runtime computed value
	BackupMaxAge time.Duration `toml:"-"` // Runtime computed value
}

// DatabaseConfig holds the store location.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// CacheConfig holds the read cache settings. A TTL of "0" disables caching.
type CacheConfig struct {
	TTL string `toml:"ttl"`
}

// BackupConfig holds where store snapshots are written and how many are kept.
type BackupConfig struct {
	Dir    string `toml:"dir"`
	MaxAge string `toml:"max_age"` // "0" keeps snapshots regardless of age
	Keep   int    `toml:"keep"`    // 0 keeps any number of snapshots
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file, creating parent directories.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// DefaultDataDir returns the per-user directory the store and config live in.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "gamelog")
}

// ApplyDefaults fills every empty setting with its default value.
func (c *Config) ApplyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(DefaultDataDir(), "data.db")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "5m"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = filepath.Join(filepath.Dir(c.Database.Path), "backups")
	}
	if c.Backup.MaxAge == "" {
		c.Backup.MaxAge = "90d"
	}
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing.
func (c *Config) ParseAndValidate() error {
	c.ApplyDefaults()

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	ttl, err := shared.ParseDuration(c.Cache.TTL)
	if err != nil {
		return fmt.Errorf("invalid cache ttl: %w", err)
	}
	c.CacheTTL = ttl

	maxAge, err := shared.ParseDuration(c.Backup.MaxAge)
	if err != nil {
		return fmt.Errorf("invalid backup max_age: %w", err)
	}
	c.BackupMaxAge = maxAge

	if c.Backup.Keep < 0 {
		return fmt.Errorf("invalid backup keep: %d", c.Backup.Keep)
	}

	return nil
}
