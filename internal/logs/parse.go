package logs

import (
	"regexp"
	"strings"
	"time"

	"logge/facade"
	"logge/logger"
)

var (
	linePattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\] (\w+)\s* \[(.*?)\] - (.*)$`)
	ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// Entry is one parsed sink line.
type Entry struct {
	Time    time.Time
	Level   facade.Level
	Target  string
	Message string
}

// ParseLine parses a line rendered by the sink, with or without color.
// Lines in any other shape report false.
func ParseLine(line string) (Entry, bool) {
	if strings.Contains(line, "\x1b[") {
		line = ansiPattern.ReplaceAllString(line, "")
	}
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	ts, err := time.ParseInLocation(logger.TimeLayout, m[1], time.UTC)
	if err != nil {
		return Entry{}, false
	}
	level, err := facade.ParseLevel(m[2])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Time: ts, Level: level, Target: m[3], Message: m[4]}, true
}

// FilterLines keeps lines whose level max admits. Lines that do not parse
// are kept only when the line before them was kept, so wrapped messages
// stay with their header.
func FilterLines(lines []string, max facade.LevelFilter) []string {
	out := lines[:0:0]
	keep := true
	for _, line := range lines {
		if entry, ok := ParseLine(line); ok {
			keep = max.Allows(entry.Level)
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
