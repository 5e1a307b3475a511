package rulebook

import (
	"errors"
	"strings"

	"rbc/markup"
)

// ErrEmptyTable is returned when table does not have even a header row.
var ErrEmptyTable = errors.New("table must have at least a header row")

// TableRow is an ordered sequence of cells. Width is kept the same across
// rows by whoever produces the table.
type TableRow []string

// Table - first row is header.
type Table struct {
	Rows []TableRow `yaml:"rows" validate:"min=1"`
}

func (t Table) Render() (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrEmptyTable
	}

	var b strings.Builder
	for i, row := range t.Rows {
		for _, cell := range row {
			b.WriteString(" | ")
			b.WriteString(cell)
		}
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(markup.TableSeparator)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
