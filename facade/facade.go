package facade

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrAlreadySet is returned by SetLogger once a sink has been registered.
var ErrAlreadySet = errors.New("facade: logger already set")

// Metadata describes an event before its message is rendered.
type Metadata struct {
	Level  Level
	Target string
}

// Record is a fully formatted event handed to the active sink.
type Record struct {
	Level   Level
	Target  string
	Message string
}

// Metadata returns the level and target of the record.
func (r Record) Metadata() Metadata {
	return Metadata{Level: r.Level, Target: r.Target}
}

// Log is implemented by sinks that can be installed with SetLogger.
// Implementations must be safe for concurrent use.
type Log interface {
	Enabled(md Metadata) bool
	Log(rec Record)
	Flush()
}

// NopLogger discards every event.
type NopLogger struct{}

func (NopLogger) Enabled(Metadata) bool { return false }
func (NopLogger) Log(Record)            {}
func (NopLogger) Flush()                {}

type slot struct {
	log Log
}

var (
	active    atomic.Pointer[slot]
	maxFilter atomic.Int32
)

// SetLogger registers the process-wide sink. Only the first call succeeds;
// every later call returns ErrAlreadySet and leaves the registered sink alone.
func SetLogger(l Log) error {
	if l == nil {
		return errors.New("facade: nil logger")
	}
	if !active.CompareAndSwap(nil, &slot{log: l}) {
		return ErrAlreadySet
	}
	return nil
}

// Logger returns the registered sink, or a NopLogger when none is set.
func Logger() Log {
	if s := active.Load(); s != nil {
		return s.log
	}
	return NopLogger{}
}

// SetMaxLevel sets the process-wide level cap consulted by call sites and by
// sinks that defer to it. The initial value is FilterOff.
func SetMaxLevel(f LevelFilter) {
	if f < FilterOff {
		f = FilterOff
	}
	if f > FilterTrace {
		f = FilterTrace
	}
	maxFilter.Store(int32(f))
}

// MaxLevel returns the current process-wide level cap.
func MaxLevel() LevelFilter {
	return LevelFilter(maxFilter.Load())
}

// Enabled reports whether an event at level for target would be emitted.
func Enabled(level Level, target string) bool {
	if !MaxLevel().Allows(level) {
		return false
	}
	return Logger().Enabled(Metadata{Level: level, Target: target})
}

// Logf formats and dispatches one event to the registered sink.
func Logf(level Level, target, format string, args ...any) {
	if !MaxLevel().Allows(level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	Logger().Log(Record{Level: level, Target: target, Message: msg})
}

// Flush flushes the registered sink.
func Flush() {
	Logger().Flush()
}

func Errorf(target, format string, args ...any) { Logf(LevelError, target, format, args...) }
func Warnf(target, format string, args ...any)  { Logf(LevelWarn, target, format, args...) }
func Infof(target, format string, args ...any)  { Logf(LevelInfo, target, format, args...) }
func Debugf(target, format string, args ...any) { Logf(LevelDebug, target, format, args...) }
func Tracef(target, format string, args ...any) { Logf(LevelTrace, target, format, args...) }

// Target binds call sites to a module name, e.g. facade.For("app::db").Infof("connected").
type Target string

// For returns a Target for the given module name.
func For(name string) Target {
	return Target(name)
}

func (t Target) Enabled(level Level) bool { return Enabled(level, string(t)) }

func (t Target) Errorf(format string, args ...any) { Logf(LevelError, string(t), format, args...) }
func (t Target) Warnf(format string, args ...any)  { Logf(LevelWarn, string(t), format, args...) }
func (t Target) Infof(format string, args ...any)  { Logf(LevelInfo, string(t), format, args...) }
func (t Target) Debugf(format string, args ...any) { Logf(LevelDebug, string(t), format, args...) }
func (t Target) Tracef(format string, args ...any) { Logf(LevelTrace, string(t), format, args...) }
