// Package main hosts the logge CLI.
//
// The commands exercise the sink end to end: emit writes single events,
// stress hammers the sink from many goroutines, levels shows what the current
// configuration admits, tail reads back a file output, and config manages
// the TOML configuration. Every command that writes events installs the sink
// once from the resolved configuration and routes the CLI's own slog output
// through it.
package main
