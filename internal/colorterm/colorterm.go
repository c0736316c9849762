// Package colorterm decides whether a log destination can render ANSI color
// and prepares the destination so escape sequences display correctly.
package colorterm

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type fileDescriptor interface {
	Fd() uintptr
}

// fileWrapper is implemented by writers that own an *os.File, such as
// *logfile.File.
type fileWrapper interface {
	File() *os.File
}

// Supported reports whether w is an interactive terminal. Writers without a
// file descriptor (buffers, pipes wrapped in other types) never are.
func Supported(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Wrap returns a writer that renders ANSI sequences written to w. Terminals
// that cannot enable virtual terminal processing get a translating writer;
// every other destination is returned unchanged.
func Wrap(w io.Writer) io.Writer {
	f, ok := osFile(w)
	if !ok || !Supported(f) {
		return w
	}
	if enableVirtualTerminal(f) {
		return w
	}
	return colorable.NewColorable(f)
}

// osFile returns the *os.File behind w, either w itself or the file a
// wrapper exposes.
func osFile(w io.Writer) (*os.File, bool) {
	switch v := w.(type) {
	case *os.File:
		return v, v != nil
	case fileWrapper:
		f := v.File()
		return f, f != nil
	}
	return nil, false
}
