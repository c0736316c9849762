package facade

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the severity of a single event. Smaller values are more severe.
type Level int

const (
	LevelError Level = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// LevelFilter caps which levels are processed. It shares the numbering of
// Level and adds Off below LevelError.
type LevelFilter int

const (
	FilterOff LevelFilter = iota
	FilterError
	FilterWarn
	FilterInfo
	FilterDebug
	FilterTrace
)

// Levels lists every level from most to least severe.
var Levels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

var toFilter = map[string]LevelFilter{
	"off":     FilterOff,
	"none":    FilterOff,
	"error":   FilterError,
	"warn":    FilterWarn,
	"warning": FilterWarn,
	"info":    FilterInfo,
	"debug":   FilterDebug,
	"trace":   FilterTrace,
}

// levelTitles holds the mixed-case names ("Info", "Warn") used by line renderers.
var levelTitles = func() map[Level]string {
	caser := cases.Title(language.Und)
	titles := make(map[Level]string, len(levelNames))
	for level, name := range levelNames {
		titles[level] = caser.String(name)
	}
	return titles
}()

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Title returns the level name with only the first letter upper-cased.
func (l Level) Title() string {
	if title, ok := levelTitles[l]; ok {
		return title
	}
	return l.String()
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// Filter returns the filter that admits l and everything more severe.
func (l Level) Filter() LevelFilter {
	return LevelFilter(l)
}

func (f LevelFilter) String() string {
	if f == FilterOff {
		return "OFF"
	}
	return Level(f).String()
}

// Allows reports whether events at level l pass the filter. Levels outside
// Error..Trace never pass.
func (f LevelFilter) Allows(l Level) bool {
	return l.Valid() && int(l) <= int(f)
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(value string) (Level, error) {
	f, err := ParseLevelFilter(value)
	if err != nil {
		return 0, err
	}
	if f == FilterOff {
		return 0, fmt.Errorf("log level: %q is a filter, not an event level", value)
	}
	return Level(f), nil
}

// ParseLevelFilter converts a case-insensitive filter name to a LevelFilter.
func ParseLevelFilter(value string) (LevelFilter, error) {
	f, ok := toFilter[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return FilterOff, fmt.Errorf("log level: unsupported value %q", value)
	}
	return f, nil
}
