package facade

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type kv struct {
	key   string
	value slog.Value
}

// appendAttrs flattens attrs onto dst. Group names are joined onto prefix
// with dots; empty attributes and empty groups vanish.
func appendAttrs(dst []kv, prefix string, attrs ...slog.Attr) []kv {
	for _, attr := range attrs {
		if attr.Equal(slog.Attr{}) {
			continue
		}
		value := attr.Value.Resolve()
		if value.Kind() == slog.KindGroup {
			dst = appendAttrs(dst, joinKey(prefix, attr.Key), value.Group()...)
			continue
		}
		dst = append(dst, kv{key: joinKey(prefix, attr.Key), value: value})
	}
	return dst
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}

// valueText renders v without quoting.
func valueText(v slog.Value) string {
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

// pairValue renders v for the right-hand side of key=value, quoting text that
// is empty or would split the pair.
func pairValue(v slog.Value) string {
	s := valueText(v)
	if s == "" || strings.ContainsFunc(s, splitsPair) {
		return strconv.Quote(s)
	}
	return s
}

func splitsPair(r rune) bool {
	return r <= ' ' || r == '=' || r == '"'
}
