// Package config provides configuration management for bridgectl using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/bridgectl/internal/blueprint"
	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/paths"
	"github.com/thoreinstein/bridgectl/pkg/fileutil"
)

// AppName is the application name used for config file naming.
const AppName = "bridgectl"

// Config represents the top-level configuration structure.
type Config struct {
	Version        int    `mapstructure:"version" yaml:"version"`
	ConflictPolicy string `mapstructure:"conflict_policy" yaml:"conflict_policy"`
	BlueprintFile  string `mapstructure:"blueprint_file" yaml:"blueprint_file"`
	LinkKind       string `mapstructure:"link_kind" yaml:"link_kind"`
	BackupKeep     int    `mapstructure:"backup_keep" yaml:"backup_keep"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:        1,
		ConflictPolicy: string(link.PolicyBackup),
		BlueprintFile:  blueprint.DefaultFileName,
		LinkKind:       "",
		BackupKeep:     0,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("BRIDGECTL")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("conflict_policy", string(link.PolicyBackup))
	viper.SetDefault("blueprint_file", blueprint.DefaultFileName)
	viper.SetDefault("link_kind", "")
	viper.SetDefault("backup_keep", 0)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to default values when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to path atomically as YAML.
func Save(path string, cfg *Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return fileutil.AtomicWriteYAML(path, cfg)
}
