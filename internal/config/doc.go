// Package config loads, normalizes, and validates logge configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as LOGGE_LEVEL and
// NO_COLOR. The log sink itself never reads files or the environment; the CLI
// resolves everything here and hands the result to internal/logsetup.
package config
