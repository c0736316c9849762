package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"logge/facade"
	"logge/internal/colorterm"
)

// ColorMode controls ANSI coloring of the timestamp and level token.
type ColorMode int

const (
	// ColorAuto colors only when the destination is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorModeNames = map[ColorMode]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return "auto"
}

// ParseColorMode converts "auto", "always" or "never" (any case) to a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("color mode: unsupported value %q", value)
	}
}

// Options is the sink configuration. Setters return the receiver so calls
// can be chained; Activate hands the result to the process-wide Logger.
type Options struct {
	writer  io.Writer
	policy  Policy
	color   ColorMode
	onError func(error)
}

// DefaultOptions writes to standard error, admits events allowed by
// facade.MaxLevel and colors only on terminals.
func DefaultOptions() *Options {
	return &Options{
		writer: os.Stderr,
		policy: MaxLevelPolicy{},
		color:  ColorAuto,
	}
}

// SetWriter replaces the destination. The writer is not probed; failures
// surface only when a line is written. A nil writer discards output.
func (o *Options) SetWriter(w io.Writer) *Options {
	if w == nil {
		w = io.Discard
	}
	o.writer = w
	return o
}

// SetEnabled replaces the enablement rule with fn. A nil fn restores
// MaxLevelPolicy.
func (o *Options) SetEnabled(fn func(md facade.Metadata) bool) *Options {
	if fn == nil {
		return o.SetPolicy(nil)
	}
	return o.SetPolicy(PredicatePolicy(fn))
}

// SetPolicy replaces the enablement rule. A nil policy restores MaxLevelPolicy.
func (o *Options) SetPolicy(p Policy) *Options {
	if p == nil {
		p = MaxLevelPolicy{}
	}
	o.policy = p
	return o
}

// SetColor selects when ANSI colors are emitted.
func (o *Options) SetColor(mode ColorMode) *Options {
	o.color = mode
	return o
}

// SetErrorHandler registers fn to receive every write error. fn runs on the
// logging goroutine after the write lock is released and must not panic.
func (o *Options) SetErrorHandler(fn func(error)) *Options {
	o.onError = fn
	return o
}

// Activate installs the options into Global and registers Global with the
// facade. It must be called at most once per process: the options are
// applied first, then the second registration panics with
// facade.ErrAlreadySet.
func (o *Options) Activate() {
	if err := o.TryActivate(); err != nil {
		panic(err)
	}
}

// TryActivate behaves like Activate but returns the registration error
// instead of panicking.
func (o *Options) TryActivate() error {
	g := Global()
	g.Apply(o)
	if err := facade.SetLogger(g); err != nil {
		return fmt.Errorf("activate logger: %w", err)
	}
	return nil
}

// settings is the immutable snapshot a Logger reads on every event.
type settings struct {
	writer  io.Writer
	policy  Policy
	palette *palette
	onError func(error)
}

func (o *Options) snapshot() *settings {
	w := o.writer
	if w == nil {
		w = io.Discard
	}
	policy := o.policy
	if policy == nil {
		policy = MaxLevelPolicy{}
	}

	colored := false
	switch o.color {
	case ColorAlways:
		colored = true
	case ColorAuto:
		colored = colorterm.Supported(w)
	}
	pal := plainPalette
	if colored {
		w = colorterm.Wrap(w)
		pal = ansiPalette
	}

	return &settings{
		writer:  w,
		policy:  policy,
		palette: pal,
		onError: o.onError,
	}
}
