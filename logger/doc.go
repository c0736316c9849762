// Package logger is the console/file sink installed behind the facade.
//
// Configuration happens on an Options value: start from DefaultOptions, swap
// the destination with SetWriter and the enablement rule with SetEnabled or
// SetPolicy, then call Activate once. Activate copies the options into the
// process-wide Logger returned by Global and registers that Logger with the
// facade. Calling Activate a second time panics because the facade refuses a
// second registration.
//
// Every accepted event becomes exactly one line:
//
//	[2024-05-01 12:00:00] Info  [app::db] - connected
//
// The timestamp is UTC and the level token is padded to five characters.
// When the destination is a terminal (or ColorAlways is set) the timestamp is
// rendered bold and dimmed and the level token bold in its level color. Lines
// from concurrent goroutines never interleave. Write errors never reach the
// caller; they are counted and handed to an optional error handler.
package logger
