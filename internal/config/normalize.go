package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	return c.normalizeLogging()
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envOutput); ok && strings.TrimSpace(value) != "" {
		c.Logging.Output = value
	}
	if value, ok := os.LookupEnv(envNoColor); ok && value != "" {
		c.Logging.Color = "never"
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultLogColor
	}

	output := strings.TrimSpace(c.Logging.Output)
	switch strings.ToLower(output) {
	case "":
		c.Logging.Output = defaultLogOutput
	case OutputStderr, OutputStdout:
		c.Logging.Output = strings.ToLower(output)
	default:
		expanded, err := expandPath(output)
		if err != nil {
			return fmt.Errorf("logging.output: %w", err)
		}
		c.Logging.Output = expanded
	}

	targets := c.Logging.Targets[:0]
	for _, target := range c.Logging.Targets {
		if target = strings.TrimSpace(target); target != "" {
			targets = append(targets, target)
		}
	}
	c.Logging.Targets = targets
	return nil
}
