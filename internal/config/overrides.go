package config

import "strings"

// Overrides are command-line values that take precedence over the file and
// the environment. Empty fields leave the loaded value alone.
type Overrides struct {
	Level  string
	Output string
	Color  string
}

// Apply merges o into the configuration, then normalizes and validates the result.
func (c *Config) Apply(o Overrides) error {
	if v := strings.TrimSpace(o.Level); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(o.Output); v != "" {
		c.Logging.Output = v
	}
	if v := strings.TrimSpace(o.Color); v != "" {
		c.Logging.Color = v
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.Validate()
}
