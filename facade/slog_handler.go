package facade

import (
	"context"
	"log/slog"
	"strings"
)

// FieldComponent is the slog attribute that overrides the target of a bridged record.
const FieldComponent = "component"

type slogHandler struct {
	target string
	prefix string
	bound  []kv
}

// NewSlogHandler returns a slog.Handler that forwards records to the
// registered sink under target. A "component" attribute, on the logger or on
// the record, replaces the target; remaining attributes are appended to the
// message as key=value pairs.
func NewSlogHandler(target string) slog.Handler {
	return &slogHandler{target: target}
}

// LevelFromSlog maps a slog level onto the facade's five levels. Anything
// below slog.LevelDebug becomes LevelTrace.
func LevelFromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return Enabled(LevelFromSlog(level), h.boundTarget())
}

func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	level := LevelFromSlog(record.Level)
	if !MaxLevel().Allows(level) {
		return nil
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.bound))
	kvs = append(kvs, h.bound...)
	record.Attrs(func(attr slog.Attr) bool {
		kvs = appendAttrs(kvs, h.prefix, attr)
		return true
	})

	target := h.target
	filtered := kvs[:0]
	for _, kv := range kvs {
		if kv.key == FieldComponent {
			target = valueText(kv.value)
			continue
		}
		filtered = append(filtered, kv)
	}

	var b strings.Builder
	if msg := strings.TrimSpace(record.Message); msg != "" {
		b.WriteString(msg)
	} else {
		b.WriteString("(no message)")
	}
	for _, kv := range filtered {
		if kv.key == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(pairValue(kv.value))
	}

	Logger().Log(Record{Level: level, Target: target, Message: b.String()})
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.bound = appendAttrs(clone.bound, h.prefix, attrs...)
	return clone
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.prefix = joinKey(h.prefix, name)
	return clone
}

func (h *slogHandler) clone() *slogHandler {
	clone := &slogHandler{target: h.target, prefix: h.prefix}
	if len(h.bound) > 0 {
		clone.bound = make([]kv, len(h.bound))
		copy(clone.bound, h.bound)
	}
	return clone
}

// boundTarget is the target implied by logger-level attributes, used before
// the record's own attributes are known.
func (h *slogHandler) boundTarget() string {
	target := h.target
	for _, kv := range h.bound {
		if kv.key == FieldComponent {
			target = valueText(kv.value)
		}
	}
	return target
}
