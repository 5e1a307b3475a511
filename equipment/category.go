package equipment

import (
	"errors"
	"fmt"
	"strings"

	"rbc/rulebook"
)

// TokenTable in category entries is replaced with category item table.
const TokenTable rulebook.Token = "[TABLE]"

// ErrMixedCategory is returned when single category holds items of different
// variants and therefore has no common table header.
var ErrMixedCategory = errors.New("category mixes item kinds")

// Category is a group of items of the same variant and entries describing
// them.
type Category struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Items       []Item           `yaml:"items,omitempty" validate:"dive"`
	Entries     []rulebook.Entry `yaml:"entries,omitempty" validate:"dive"`
}

// Kind returns variant of the first item, empty for empty category.
func (c *Category) Kind() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].Kind()
}

// Table renders item table headed by the first item variant. Category
// without items has no table.
func (c *Category) Table() (string, error) {
	if len(c.Items) == 0 {
		return "", nil
	}

	kind := c.Kind()
	var b strings.Builder
	b.WriteString(c.Items[0].Header())
	for i := range c.Items {
		if k := c.Items[i].Kind(); k != kind {
			return "", fmt.Errorf("category %q, item %q is %s, expected %s: %w", c.Name, c.Items[i].Name, k, kind, ErrMixedCategory)
		}
		b.WriteString(c.Items[i].Row())
	}
	return b.String(), nil
}

// Render concatenates category entries and puts item table in place of
// [TABLE] tokens.
func (c *Category) Render() (string, error) {
	table, err := c.Table()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := range c.Entries {
		text, err := c.Entries[i].Render()
		if err != nil {
			return "", fmt.Errorf("category %q: %w", c.Name, err)
		}
		b.WriteString(text)
	}

	r := rulebook.NewReplacements()
	r.SetVerbatim(TokenTable, table)
	return r.Apply(b.String()), nil
}

// Trait is a catalog wide item trait definition.
type Trait struct {
	Name              string `yaml:"name" validate:"required"`
	Description       string `yaml:"description"`
	HasNumVariable    bool   `yaml:"has_num_variable,omitempty"`
	HasStringVariable bool   `yaml:"has_string_variable,omitempty"`
}

func (t Trait) Render() string {
	var b strings.Builder
	b.WriteString("###")
	b.WriteString(t.Name)
	if t.HasNumVariable || t.HasStringVariable {
		b.WriteString(" [X]")
	}
	b.WriteByte('\n')
	b.WriteString(t.Description)
	b.WriteByte('\n')
	return b.String()
}

