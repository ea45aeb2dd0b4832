// Package config provides configuration management for the bridgectl CLI.
//
// This package handles loading, saving, and validating bridgectl's own
// configuration file. It is distinct from the tool configurations whose
// links bridgectl manages.
//
// # Configuration File
//
// The default configuration file location is ~/.config/bridgectl/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	conflict_policy: backup   # backup | overwrite | skip
//	blueprint_file: aicli-links.json
//	link_kind: ""             # empty = probe, or symlink | hardlink | copy
//	backup_keep: 0            # 0 = keep all backups
//
// # Loading Configuration
//
// Use [Load] with an empty path to search the default locations with
// graceful fallback to default values:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Environment variables prefixed with BRIDGECTL_ override file values,
// e.g. BRIDGECTL_CONFLICT_POLICY=skip.
//
// # Validation
//
// Loaded configurations can be checked with [Validate], which returns a
// slice of field-level errors:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
