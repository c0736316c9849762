package logger

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"logge/facade"
)

// now is swapped by tests that need a fixed clock.
var now = time.Now

// Logger is the sink behind the facade. The zero value is not usable; use
// New or Global.
type Logger struct {
	current     atomic.Pointer[settings]
	mu          sync.Mutex
	writeErrors atomic.Uint64
}

var _ facade.Log = (*Logger)(nil)

var global = sync.OnceValue(func() *Logger {
	return New(DefaultOptions())
})

// Global returns the process-wide Logger that Activate configures and
// registers. It is created with DefaultOptions on first use.
func Global() *Logger {
	return global()
}

// New builds a standalone Logger. It is not registered with the facade.
func New(opts *Options) *Logger {
	l := &Logger{}
	l.Apply(opts)
	return l
}

// Apply swaps in a copy of opts. Events already being written finish
// against the previous configuration; later events see the new one.
// A nil opts applies DefaultOptions.
func (l *Logger) Apply(opts *Options) {
	if opts == nil {
		opts = DefaultOptions()
	}
	l.current.Store(opts.snapshot())
}

// Enabled reports whether the current policy admits md. Unknown levels are
// never admitted, whatever the policy says.
func (l *Logger) Enabled(md facade.Metadata) bool {
	return md.Level.Valid() && l.current.Load().policy.Enabled(md)
}

// Log renders and writes rec if the current policy admits it. Write
// failures are counted and passed to the error handler, never returned.
func (l *Logger) Log(rec facade.Record) {
	if !rec.Level.Valid() {
		return
	}
	s := l.current.Load()
	if !s.policy.Enabled(rec.Metadata()) {
		return
	}
	line := s.palette.appendLine(make([]byte, 0, 48+len(rec.Target)+len(rec.Message)), now(), rec)
	if err := l.write(s.writer, line); err != nil {
		l.writeErrors.Add(1)
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// Flush is a no-op; every line is handed to the writer in a single call.
func (l *Logger) Flush() {}

// WriteErrors reports how many lines failed to write.
func (l *Logger) WriteErrors() uint64 {
	return l.writeErrors.Load()
}

// write holds the lock for exactly one Write call. A panicking writer
// propagates to the caller with the lock released.
func (l *Logger) write(w io.Writer, line []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, err := w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	return err
}
