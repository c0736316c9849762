// Package logs reads back files written by the sink.
//
// Tail returns the last N lines or everything after a byte offset, and can
// wait for new lines to appear. ParseLine splits a rendered line into its
// timestamp, level, target, and message so callers can filter by level.
package logs
