//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName drops path and list separators and leading dots.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(r rune) rune {
		if r == os.PathSeparator || r == os.PathListSeparator {
			return -1
		}
		return r
	}, in), ".")
	if len(out) == 0 {
		return "_unnamed_"
	}
	return out
}

// EnableColorOutput reports whether stream is a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
