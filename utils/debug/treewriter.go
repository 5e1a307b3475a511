// Package debug has helpers producing human readable dumps of program
// structures for debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxTextLen limits length of text values in dumps, longer values are cut.
const MaxTextLen = 80

// TreeWriter accumulates indented lines.
type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.b.WriteString("  ")
	}
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// Text writes "label: value" with value quoted and shortened. Empty values
// are skipped.
func (tw *TreeWriter) Text(depth int, label, value string) {
	if len(value) == 0 {
		return
	}
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(strconv.Quote(shorten(value)))
	tw.b.WriteByte('\n')
}

// List writes "label (n): a, b, c". Empty lists are skipped.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	if len(items) == 0 {
		return
	}
	tw.Line(depth, "%s (%d): %s", label, len(items), strings.Join(items, ", "))
}

func shorten(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxTextLen]) + "..."
}
