package equipment

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"rbc/markup"
)

const (
	// DefaultTraitsTitle heads traits section unless configured otherwise.
	DefaultTraitsTitle = "Traits"
	// TraitRunLength - traits between layout breaks.
	TraitRunLength = 10
)

// Catalog is the complete equipment chapter.
type Catalog struct {
	TraitsTitle string     `yaml:"traits_title,omitempty"`
	Traits      []Trait    `yaml:"traits,omitempty" validate:"dive"`
	Categories  []Category `yaml:"categories,omitempty" validate:"dive"`

	output string
}

// RenderChapter renders categories in declared order followed by traits.
func (c *Catalog) RenderChapter() (string, error) {
	var b strings.Builder
	for i := range c.Categories {
		text, err := c.Categories[i].Render()
		if err != nil {
			return "", fmt.Errorf("equipment: %w", err)
		}
		b.WriteString(text)
	}
	if len(c.Traits) > 0 {
		b.WriteString(c.renderTraits())
	}
	c.output = b.String()
	return c.output, nil
}

// Output returns result of the last successful RenderChapter.
func (c *Catalog) Output() string {
	return c.output
}

// SortedTraits returns traits in natural name order.
func (c *Catalog) SortedTraits() []Trait {
	traits := slices.Clone(c.Traits)
	slices.SortStableFunc(traits, func(a, b Trait) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}
		return 0
	})
	return traits
}

// renderTraits starts on a new page, column break after first run of
// traits, page break after second and so on.
func (c *Catalog) renderTraits() string {
	title := c.TraitsTitle
	if len(title) == 0 {
		title = DefaultTraitsTitle
	}

	var b strings.Builder
	b.WriteString(markup.Separator(markup.PageBreak))
	b.WriteString("##")
	b.WriteString(title)
	b.WriteString("\n-")
	b.WriteString(markup.Separator(markup.RowBreak))
	for i, t := range c.SortedTraits() {
		b.WriteString(t.Render())
		if n := i + 1; n%TraitRunLength == 0 {
			if (n/TraitRunLength)%2 == 1 {
				b.WriteString(markup.Separator(markup.ColumnBreak))
			} else {
				b.WriteString(markup.Separator(markup.PageBreak))
			}
		}
	}
	return b.String()
}

// UnknownTraits lists trait references that have no definition, in order of
// first appearance.
func (c *Catalog) UnknownTraits() []string {
	known := make(map[string]struct{}, len(c.Traits))
	for _, t := range c.Traits {
		known[t.Name] = struct{}{}
	}

	var unknown []string
	seen := make(map[string]struct{})
	for i := range c.Categories {
		for j := range c.Categories[i].Items {
			for _, ref := range c.Categories[i].Items[j].Traits {
				if _, ok := known[ref.Name]; ok {
					continue
				}
				if _, ok := seen[ref.Name]; ok {
					continue
				}
				seen[ref.Name] = struct{}{}
				unknown = append(unknown, ref.Name)
			}
		}
	}
	return unknown
}
