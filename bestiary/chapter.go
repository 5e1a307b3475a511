package bestiary

import (
	"fmt"
	"strings"

	"rbc/markup"
)

// Category groups beasts under a common heading.
type Category struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	Beasts      []BeastEntry `yaml:"beasts,omitempty" validate:"dive"`
}

// Render interleaves stat blocks with column (even index) and row (odd
// index) breaks.
func (c *Category) Render(abilities AbilityResolver) (string, error) {
	var out strings.Builder
	out.WriteString(markup.Heading(2, c.Title))
	out.WriteString("-")
	if len(c.Description) > 0 {
		out.WriteByte('\n')
		out.WriteString(c.Description)
	}
	if len(c.Beasts) > 1 {
		out.WriteString(markup.Separator(markup.RowBreak))
	} else {
		out.WriteByte('\n')
	}

	for i := range c.Beasts {
		text, err := c.Beasts[i].Render(abilities)
		if err != nil {
			return "", fmt.Errorf("category %q: %w", c.Title, err)
		}
		out.WriteString(text)
		if i%2 == 0 {
			out.WriteString(markup.Separator(markup.ColumnBreak))
		} else {
			out.WriteString(markup.Separator(markup.RowBreak))
		}
	}
	out.WriteString(markup.Separator(markup.RowBreak))
	return out.String(), nil
}

// Chapter is the whole bestiary: chapter wide ability table and categories.
type Chapter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Abilities   []AbilityEntry `yaml:"abilities,omitempty" validate:"dive"`
	Categories  []Category     `yaml:"categories,omitempty" validate:"dive"`

	output string
}

// AbilityTable indexes chapter abilities.
func (c *Chapter) AbilityTable() *AbilityTable {
	return NewAbilityTable(c.Abilities)
}

// Beasts returns all beasts in declaration order.
func (c *Chapter) Beasts() []*BeastEntry {
	var all []*BeastEntry
	for i := range c.Categories {
		for j := range c.Categories[i].Beasts {
			all = append(all, &c.Categories[i].Beasts[j])
		}
	}
	return all
}

// RenderChapter produces complete bestiary chapter text.
func (c *Chapter) RenderChapter() (string, error) {
	abilities := c.AbilityTable()

	var out strings.Builder
	out.WriteString(markup.Heading(1, c.Title))
	out.WriteString("-")
	if len(c.Description) > 0 {
		out.WriteByte('\n')
		out.WriteString(c.Description)
	}
	for i := range c.Categories {
		text, err := c.Categories[i].Render(abilities)
		if err != nil {
			return "", fmt.Errorf("bestiary %q: %w", c.Title, err)
		}
		out.WriteByte('\n')
		out.WriteString(text)
	}

	c.output = out.String()
	return c.output, nil
}

// Output returns result of the last successful RenderChapter.
func (c *Chapter) Output() string {
	return c.output
}
