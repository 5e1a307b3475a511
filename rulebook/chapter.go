// Package rulebook defines authored content nodes of the rulebook and renders
// them bottom up: list entries and tables into boxes, boxes into entries,
// entries into chapters.
package rulebook

import (
	"fmt"
	"strings"

	"rbc/common"
	"rbc/markup"
)

// Chapter owns its entries and keeps the last rendered output for
// inspection.
type Chapter struct {
	Title       string   `yaml:"title"`
	Description []string `yaml:"description,omitempty"`
	Entries     []Entry  `yaml:"entries,omitempty" validate:"dive"`

	output string
}

// Render always rebuilds chapter from scratch.
func (c *Chapter) Render() (string, error) {
	var b strings.Builder

	b.WriteString(markup.Container(markup.ContainerHead, markup.Format(c.Title, common.ParagraphFormatH1)))

	var desc strings.Builder
	for _, d := range c.Description {
		desc.WriteString(d)
		desc.WriteByte('\n')
	}
	b.WriteString(markup.Format(desc.String(), common.ParagraphFormatNone))
	b.WriteByte('\n')

	for i := range c.Entries {
		text, err := c.Entries[i].Render()
		if err != nil {
			return "", fmt.Errorf("chapter %q: %w", c.Title, err)
		}
		b.WriteString(text)
	}

	c.output = b.String()
	return c.output, nil
}

// Output returns result of the last successful Render.
func (c *Chapter) Output() string {
	return c.output
}
