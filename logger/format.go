package logger

import (
	"time"

	"github.com/fatih/color"

	"logge/facade"
)

// TimeLayout is the timestamp layout of every line, always in UTC.
const TimeLayout = "2006-01-02 15:04:05"

type levelStyle struct {
	name  string
	attrs []color.Attribute
}

var levelStyles = map[facade.Level]levelStyle{
	facade.LevelError: {"red", []color.Attribute{color.FgRed, color.Bold}},
	facade.LevelWarn:  {"yellow", []color.Attribute{color.FgYellow, color.Bold}},
	facade.LevelInfo:  {"green", []color.Attribute{color.FgGreen, color.Bold}},
	facade.LevelDebug: {"blue", []color.Attribute{color.FgBlue, color.Bold}},
	facade.LevelTrace: {"magenta", []color.Attribute{color.FgMagenta, color.Bold}},
}

var stampAttrs = []color.Attribute{color.Bold, color.FgHiBlack}

// ColorName reports the color used for a level token when coloring is on.
func ColorName(level facade.Level) string {
	if style, ok := levelStyles[level]; ok {
		return style.name
	}
	return "none"
}

// palette renders the decorated pieces of a line. A nil color means plain text.
type palette struct {
	stamp  *color.Color
	levels map[facade.Level]*color.Color
}

var (
	plainPalette = &palette{}
	ansiPalette  = newANSIPalette()
)

func newANSIPalette() *palette {
	forced := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		c.EnableColor()
		return c
	}
	p := &palette{
		stamp:  forced(stampAttrs...),
		levels: make(map[facade.Level]*color.Color, len(levelStyles)),
	}
	for level, style := range levelStyles {
		p.levels[level] = forced(style.attrs...)
	}
	return p
}

func (p *palette) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// levelToken pads the title-case name to five columns before coloring so
// escape sequences do not count toward the width.
func levelToken(level facade.Level) string {
	name := level.Title()
	for len(name) < 5 {
		name += " "
	}
	return name
}

// appendLine renders rec as "[ts] LEVEL [target] - message\n".
func (p *palette) appendLine(buf []byte, ts time.Time, rec facade.Record) []byte {
	buf = append(buf, '[')
	buf = append(buf, p.paint(p.stamp, ts.UTC().Format(TimeLayout))...)
	buf = append(buf, "] "...)
	buf = append(buf, p.paint(p.levels[rec.Level], levelToken(rec.Level))...)
	buf = append(buf, " ["...)
	buf = append(buf, rec.Target...)
	buf = append(buf, "] - "...)
	buf = append(buf, rec.Message...)
	return append(buf, '\n')
}
