// Package markup holds formatting primitives of the output dialect understood
// by the downstream layout renderer: markdown style headings, container calls
// "name(\n...\n)", pipe tables and single character layout separators.
package markup

import (
	"strings"

	"rbc/common"
)

// Layout separators. Each is emitted on its own line.
const (
	ColumnBreak = "|"
	RowBreak    = "/"
	PageBreak   = "="
)

// Container names known to the renderer.
const (
	ContainerNote      = "note"
	ContainerItem      = "item"
	ContainerHead      = "head"
	ContainerRules     = "rules"
	ContainerTitle     = "title"
	ContainerWatermark = "watermark"
)

const (
	// TableSeparator goes right under table header row.
	TableSeparator = "-- | --"
	// NewlineEscape is authored in text fields which cannot hold real line
	// breaks, replaced as the very last step of document assembly.
	NewlineEscape = `[\n]`
)

// Format wraps text according to paragraph kind.
func Format(text string, kind common.ParagraphFormat) string {
	switch kind {
	case common.ParagraphFormatH1, common.ParagraphFormatH2, common.ParagraphFormatH3,
		common.ParagraphFormatH4, common.ParagraphFormatH5:
		return Heading(kind.Heading(), text)
	case common.ParagraphFormatItem:
		return Container(ContainerItem, text)
	case common.ParagraphFormatNote:
		return Container(ContainerNote, text)
	case common.ParagraphFormatRules:
		return Container(ContainerRules, text)
	default:
		return text + "\n"
	}
}

// Heading renders newline terminated heading of requested level (1-5). Any
// other level produces nothing.
func Heading(level int, text string) string {
	if level < 1 || level > 5 {
		return ""
	}
	return strings.Repeat("#", level) + " " + text + "\n"
}

// Container renders "name(\nbody\n)\n".
func Container(name, body string) string {
	var b strings.Builder
	b.Grow(len(name) + len(body) + 5)
	b.WriteString(name)
	b.WriteString("(\n")
	b.WriteString(body)
	b.WriteString("\n)\n")
	return b.String()
}

// Separator returns layout separator on its own line.
func Separator(sep string) string {
	return "\n" + sep + "\n"
}

// Unescape replaces authored newline escapes with real line breaks.
func Unescape(text string) string {
	return strings.ReplaceAll(text, NewlineEscape, "\n")
}
