// Package config handles configuration management for csvmv.
// It supports loading configuration from multiple sources including
// TOML and YAML files, environment variables, and command-line flags.
//
// Sources are layered, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/csvmv/config.toml)
//  3. an explicit config file given with --config
//  4. CSVMV_* environment variables (nested keys use "__", e.g. CSVMV_MAPPING__DELIMITER)
//  5. command-line flags and positional arguments
package config
