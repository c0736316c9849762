// Package logsetup turns the [logging] configuration into sink options and
// installs them for the CLI.
package logsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"logge/facade"
	"logge/internal/config"
	"logge/logfile"
	"logge/logger"
)

// Streams are the standard destinations selected by the "stdout" and
// "stderr" output keywords. Nil fields fall back to os.Stdout and os.Stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Setup is a resolved sink configuration.
type Setup struct {
	Options  *logger.Options
	MaxLevel facade.LevelFilter
	Output   string

	file *logfile.File
}

// FromConfig resolves cfg into sink options, opening the output file when
// one is configured. Callers must Close the result.
func FromConfig(cfg *config.Config, streams Streams) (*Setup, error) {
	if cfg == nil {
		return nil, errors.New("logsetup: config is required")
	}
	if streams.Stdout == nil {
		streams.Stdout = os.Stdout
	}
	if streams.Stderr == nil {
		streams.Stderr = os.Stderr
	}

	maxLevel, err := facade.ParseLevelFilter(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	colorMode, err := logger.ParseColorMode(cfg.Logging.Color)
	if err != nil {
		return nil, fmt.Errorf("logging.color: %w", err)
	}

	setup := &Setup{MaxLevel: maxLevel, Output: cfg.Logging.Output}

	var w io.Writer
	switch cfg.Logging.Output {
	case config.OutputStdout:
		w = streams.Stdout
	case config.OutputStderr, "":
		w = streams.Stderr
	default:
		file, err := logfile.Open(cfg.Logging.Output, logfile.Options{Exclusive: cfg.Logging.Exclusive})
		if err != nil {
			return nil, err
		}
		setup.file = file
		w = file
	}

	var policy logger.Policy = logger.MaxLevelPolicy{}
	if len(cfg.Logging.Targets) > 0 {
		policy = logger.TargetPolicy{
			Prefixes: append([]string(nil), cfg.Logging.Targets...),
			Next:     logger.MaxLevelPolicy{},
		}
	}

	setup.Options = logger.DefaultOptions().
		SetWriter(w).
		SetPolicy(policy).
		SetColor(colorMode).
		SetErrorHandler(reportOnce(streams.Stderr))
	return setup, nil
}

// Install sets the facade's maximum level and activates the options. When an
// earlier Install in this process already registered the global sink, the
// new options replace the old ones instead of failing.
func (s *Setup) Install() error {
	facade.SetMaxLevel(s.MaxLevel)
	err := s.Options.TryActivate()
	if errors.Is(err, facade.ErrAlreadySet) && facade.Logger() == facade.Log(logger.Global()) {
		return nil
	}
	return err
}

// Close releases the output file, if any.
func (s *Setup) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

func reportOnce(w io.Writer) func(error) {
	var once sync.Once
	return func(err error) {
		once.Do(func() {
			fmt.Fprintf(w, "logge: write log: %v (further write errors suppressed)\n", err)
		})
	}
}
