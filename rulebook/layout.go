package rulebook

import (
	"strings"

	"rbc/markup"
)

// Layout hints are purely positional: nothing is measured, downstream
// typesetter decides what a break means.
const (
	// BoxRunLength - hard page break after every that many boxes.
	BoxRunLength = 6
	// ItemGridThreshold - fewer items are simply concatenated.
	ItemGridThreshold = 5
	// ItemGroupSize - items between separators in a grid.
	ItemGroupSize = 4
)

// InterleaveBoxes follows every rendered box with a parity separator (row
// break on even index, column break on odd) and puts a page break after every
// BoxRunLength boxes.
func InterleaveBoxes(boxes []string) string {
	var b strings.Builder
	for i, box := range boxes {
		b.WriteString(box)
		if i%2 == 0 {
			b.WriteString(markup.Separator(markup.RowBreak))
		} else {
			b.WriteString(markup.Separator(markup.ColumnBreak))
		}
		if (i+1)%BoxRunLength == 0 {
			b.WriteString(markup.PageBreak)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ItemGrid lays out items in groups of ItemGroupSize separated by column and
// page breaks in turn. Collections shorter than ItemGridThreshold are not
// paginated at all.
func ItemGrid(items []string) string {
	if len(items) < ItemGridThreshold {
		return Concat(items)
	}

	var (
		b      strings.Builder
		column = true
	)
	for i, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
		if (i+1)%ItemGroupSize != 0 {
			continue
		}
		if column {
			b.WriteString(markup.ColumnBreak)
		} else {
			b.WriteString(markup.PageBreak)
		}
		b.WriteByte('\n')
		column = !column
	}
	return b.String()
}

// Concat puts every rendered element on its own line.
func Concat(elements []string) string {
	var b strings.Builder
	for _, e := range elements {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.String()
}
