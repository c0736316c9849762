package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ConfigOption adds a key to the [logging] section of a generated config file.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	lines []string
}

// WithLevel sets logging.level.
func WithLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.lines = append(b.lines, "level = "+quote(level))
	}
}

// WithOutput sets logging.output.
func WithOutput(output string) ConfigOption {
	return func(b *configBuilder) {
		b.lines = append(b.lines, "output = "+quote(output))
	}
}

// WithColor sets logging.color.
func WithColor(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.lines = append(b.lines, "color = "+quote(mode))
	}
}

// WithTargets sets logging.targets.
func WithTargets(targets ...string) ConfigOption {
	return func(b *configBuilder) {
		quoted := make([]string, len(targets))
		for i, target := range targets {
			quoted[i] = quote(target)
		}
		b.lines = append(b.lines, "targets = ["+strings.Join(quoted, ", ")+"]")
	}
}

// WithExclusive sets logging.exclusive.
func WithExclusive() ConfigOption {
	return func(b *configBuilder) {
		b.lines = append(b.lines, "exclusive = true")
	}
}

// WriteConfig writes a config file into a fresh temp directory and returns
// its path. Color defaults to never so test output stays free of escapes.
func WriteConfig(t testing.TB, opts ...ConfigOption) string {
	t.Helper()

	builder := &configBuilder{}
	WithColor("never")(builder)
	for _, opt := range opts {
		opt(builder)
	}

	body := "[logging]\n" + strings.Join(builder.lines, "\n") + "\n"
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}

func quote(value string) string {
	return "'" + value + "'"
}
