package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"logge/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOGGE_LEVEL", "")
	t.Setenv("LOGGE_OUTPUT", "")
	t.Setenv("NO_COLOR", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "logge", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Output != config.OutputStderr || cfg.Logging.Color != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg.Logging)
	}
	if cfg.OutputIsFile() {
		t.Fatal("stderr output should not be treated as a file")
	}
}

func TestLoadReadsFileAndExpandsOutput(t *testing.T) {
	home := isolateEnv(t)
	path := filepath.Join(t.TempDir(), "logge.toml")
	body := `[logging]
level = " DEBUG "
output = "~/logs/app.log"
color = "Never"
targets = ["app::db", "  ", "app::http"]
exclusive = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Color != "never" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
	if want := filepath.Join(home, "logs", "app.log"); cfg.Logging.Output != want {
		t.Fatalf("output = %q, want %q", cfg.Logging.Output, want)
	}
	if got := strings.Join(cfg.Logging.Targets, ","); got != "app::db,app::http" {
		t.Fatalf("targets = %q", got)
	}
	if !cfg.OutputIsFile() || !cfg.Logging.Exclusive {
		t.Fatal("expected exclusive file output")
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	isolateEnv(t)
	if err := os.WriteFile("logge.toml", []byte("[logging]\nlevel = \"trace\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "logge.toml" {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Logging.Level != "trace" {
		t.Fatalf("level = %q, want trace", cfg.Logging.Level)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LOGGE_LEVEL", "warn")
	t.Setenv("LOGGE_OUTPUT", "STDOUT")
	t.Setenv("NO_COLOR", "1")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Output != config.OutputStdout {
		t.Fatalf("output = %q, want stdout", cfg.Logging.Output)
	}
	if cfg.Logging.Color != "never" {
		t.Fatalf("color = %q, want never", cfg.Logging.Color)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults", func(*config.Config) {}, ""},
		{"off level", func(c *config.Config) { c.Logging.Level = "off" }, ""},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad color", func(c *config.Config) { c.Logging.Color = "rainbow" }, "logging.color"},
		{"empty output", func(c *config.Config) { c.Logging.Output = "" }, "logging.output"},
		{"exclusive stderr", func(c *config.Config) { c.Logging.Exclusive = true }, "logging.exclusive"},
		{"exclusive file", func(c *config.Config) {
			c.Logging.Output = "/var/log/app.log"
			c.Logging.Exclusive = true
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	defaults := config.Default().Logging
	if cfg.Logging.Level != defaults.Level || cfg.Logging.Output != defaults.Output || cfg.Logging.Color != defaults.Color {
		t.Fatalf("sample should match defaults, got %+v", cfg.Logging)
	}
	if len(cfg.Logging.Targets) != 0 || cfg.Logging.Exclusive {
		t.Fatalf("unexpected sample values: %+v", cfg.Logging)
	}
}

func TestEncodeWritesLoggingSection(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Targets = []string{"app"}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[logging]", "level", "info", "stderr", "targets", "app"} {
		if !strings.Contains(out, want) {
			t.Fatalf("encoded config missing %q:\n%s", want, out)
		}
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := isolateEnv(t)
	got, err := config.ExpandPath("~/x/y.log")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "x", "y.log"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestApplyOverrides(t *testing.T) {
	home := isolateEnv(t)
	cfg := config.Default()

	if err := cfg.Apply(config.Overrides{Level: "TRACE", Output: "~/app.log", Color: "always"}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Logging.Level != "trace" || cfg.Logging.Color != "always" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
	if want := filepath.Join(home, "app.log"); cfg.Logging.Output != want {
		t.Fatalf("output = %q, want %q", cfg.Logging.Output, want)
	}

	if err := cfg.Apply(config.Overrides{}); err != nil {
		t.Fatalf("empty overrides returned error: %v", err)
	}
	if cfg.Logging.Level != "trace" {
		t.Fatalf("empty override changed level to %q", cfg.Logging.Level)
	}

	if err := cfg.Apply(config.Overrides{Color: "sometimes"}); err == nil {
		t.Fatal("expected validation error for bad color")
	}
}
