package config

import (
	"errors"
	"fmt"

	"logge/facade"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	return c.validateLogging()
}

func (c *Config) validateLogging() error {
	if _, err := facade.ParseLevelFilter(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color: unsupported value %q (want auto, always, or never)", c.Logging.Color)
	}
	if c.Logging.Output == "" {
		return errors.New("logging.output must be set")
	}
	if c.Logging.Exclusive && !c.OutputIsFile() {
		return errors.New("logging.exclusive requires a file output")
	}
	return nil
}
