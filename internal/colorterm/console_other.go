//go:build !windows

package colorterm

import "os"

// ANSI sequences are interpreted natively outside Windows.
func enableVirtualTerminal(*os.File) bool {
	return true
}
