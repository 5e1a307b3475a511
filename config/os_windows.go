//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// CleanFileName drops characters Windows does not allow in file names.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r == 0 || strings.ContainsRune(`<>":/\|?*;`, r) {
			return -1
		}
		return r
	}, in)
	if len(out) == 0 {
		return "_unnamed_"
	}
	return out
}

// EnableColorOutput turns on VT100 processing for console stream, reporting
// whether it succeeded.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}
