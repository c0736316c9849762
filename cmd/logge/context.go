package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"logge/facade"
	"logge/internal/config"
	"logge/internal/logsetup"
)

const cliTarget = "logge"

type rootFlags struct {
	configPath string
	level      string
	output     string
	color      string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		overrides := config.Overrides{
			Level:  c.flags.level,
			Output: c.flags.output,
			Color:  c.flags.color,
		}
		if err := cfg.Apply(overrides); err != nil {
			c.configErr = fmt.Errorf("apply flags: %w", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// installSink activates the configured sink for cmd and points slog at it.
// The returned closer releases the output file.
func (c *commandContext) installSink(cmd *cobra.Command) (io.Closer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	setup, err := logsetup.FromConfig(cfg, logsetup.Streams{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}
	if err := setup.Install(); err != nil {
		setup.Close()
		return nil, fmt.Errorf("install log sink: %w", err)
	}
	slog.SetDefault(slog.New(facade.NewSlogHandler(cliTarget)))
	return setup, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
