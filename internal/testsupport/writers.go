package testsupport

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrWriteFailed is returned by FailingWriter when no error is configured.
var ErrWriteFailed = errors.New("testsupport: write failed")

// SyncBuffer is a bytes.Buffer safe for concurrent use.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *SyncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// Lines splits the buffered text on newlines, dropping the trailing empty element.
func (b *SyncBuffer) Lines() []string {
	text := strings.TrimSuffix(b.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// FailingWriter rejects every write with Err (ErrWriteFailed when nil).
type FailingWriter struct {
	Err   error
	calls atomic.Int64
}

func (w *FailingWriter) Write([]byte) (int, error) {
	w.calls.Add(1)
	if w.Err != nil {
		return 0, w.Err
	}
	return 0, ErrWriteFailed
}

// Calls reports how many writes were attempted.
func (w *FailingWriter) Calls() int64 {
	return w.calls.Load()
}

// ShortWriter accepts all but the last byte of every write without an error.
type ShortWriter struct{}

func (ShortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}
