package rulebook

import (
	"strings"

	"rbc/markup"
)

// ListLayout selects how list entries are rendered. Layout is chosen by the
// token referencing the list, not stored with the list.
type ListLayout int

const (
	ListBullet ListLayout = iota
	ListLoose
	ListHeading2
	ListHeading3
	ListHeading4
)

// ListEntry is a single list element, both parts are optional.
type ListEntry struct {
	Title   string `yaml:"title,omitempty"`
	Content string `yaml:"content,omitempty"`
}

func (e ListEntry) Render(layout ListLayout) string {
	var b strings.Builder
	switch layout {
	case ListBullet:
		b.WriteString("- ")
		e.writeInline(&b)
		return b.String()
	case ListLoose:
		e.writeInline(&b)
	case ListHeading2, ListHeading3, ListHeading4:
		if len(e.Title) > 0 {
			b.WriteString(markup.Heading(int(layout-ListHeading2)+2, e.Title))
		}
		if len(e.Content) > 0 {
			b.WriteString(e.Content)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (e ListEntry) writeInline(b *strings.Builder) {
	if len(e.Title) > 0 {
		b.WriteString("**")
		b.WriteString(e.Title)
		b.WriteString(" -** ")
	}
	if len(e.Content) > 0 {
		b.WriteString(e.Content)
		b.WriteByte('\n')
	}
}

// List is an ordered sequence of entries.
type List []ListEntry

func (l List) Render(layout ListLayout) string {
	var b strings.Builder
	for _, e := range l {
		b.WriteString(e.Render(layout))
	}
	return b.String()
}
