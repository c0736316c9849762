// Package logfile opens append-only log files for the sink, optionally
// guarded by an advisory lock so only one process writes a given file.
package logfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by Open when another process holds the file's lock.
var ErrLocked = errors.New("logfile: locked by another process")

// Options controls how Open prepares the file.
type Options struct {
	// Exclusive takes a non-blocking advisory lock on "<path>.lock".
	Exclusive bool
}

// File is an append-only log destination. Write is safe for concurrent use
// by virtue of O_APPEND; the sink serializes writes anyway.
type File struct {
	path string
	file *os.File
	lock *flock.Flock

	closeOnce sync.Once
	closeErr  error
}

// Open creates parent directories as needed and opens path for appending.
func Open(path string, opts Options) (*File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("logfile: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log dir: %w", err)
	}

	var lock *flock.Flock
	if opts.Exclusive {
		lock = flock.New(LockPath(trimmed))
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", trimmed, ErrLocked)
		}
	}

	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
	}
	return &File{path: trimmed, file: file, lock: lock}, nil
}

// LockPath is the lock file used for path when Options.Exclusive is set.
func LockPath(path string) string {
	return path + ".lock"
}

// Path returns the file's location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Fd exposes the descriptor so terminal detection treats the file like any
// other *os.File.
func (f *File) Fd() uintptr {
	return f.file.Fd()
}

// File returns the underlying file so console handling can reach it. Callers
// must not close it; use Close instead.
func (f *File) File() *os.File {
	return f.file
}

// Sync commits written lines to stable storage.
func (f *File) Sync() error {
	return f.file.Sync()
}

// Close closes the file and releases the lock. Later calls return the first result.
func (f *File) Close() error {
	f.closeOnce.Do(func() {
		err := f.file.Close()
		if f.lock != nil {
			if unlockErr := f.lock.Unlock(); unlockErr != nil && err == nil {
				err = fmt.Errorf("release lock: %w", unlockErr)
			}
		}
		f.closeErr = err
	})
	return f.closeErr
}
