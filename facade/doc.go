// Package facade is the process-wide logging front door that call sites use.
//
// It owns the level vocabulary, the event metadata handed to sinks, the
// single registration slot for the active sink, and the global maximum level
// that call sites consult before building a record. Sinks implement Log and
// are installed exactly once with SetLogger; until then every event goes to a
// no-op sink.
//
// Call sites either use the package helpers (Logf, Infof, ...) or a Target
// value bound to a module name. Code already written against log/slog can be
// routed through the same sink with NewSlogHandler.
package facade
