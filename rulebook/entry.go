package rulebook

import (
	"fmt"
	"strings"

	"rbc/common"
	"rbc/markup"
)

// FormattingOptions governs how entry title and body are rendered.
type FormattingOptions struct {
	Title   common.ParagraphFormat `yaml:"title"`
	Content common.ParagraphFormat `yaml:"content"`
}

// Entry is a titled piece of a chapter. Its body paragraphs may reference
// entry children (list, boxes, items, tables) with tokens.
type Entry struct {
	Title   string            `yaml:"title"`
	Content []string          `yaml:"content,omitempty"`
	Options FormattingOptions `yaml:"options"`
	List    List              `yaml:"list,omitempty"`
	Boxes   []BoxEntry        `yaml:"boxes,omitempty"`
	Items   []BoxEntry        `yaml:"items,omitempty"`
	Tables  []Table           `yaml:"tables,omitempty" validate:"dive"`
}

func (e *Entry) Render() (string, error) {
	repl, err := e.Replacements()
	if err != nil {
		return "", err
	}

	var body strings.Builder
	for _, p := range e.Content {
		body.WriteString(p)
		body.WriteString("\n\n")
	}

	var b strings.Builder
	if len(e.Title) > 0 {
		b.WriteString(markup.Format(e.Title, e.Options.Title))
		b.WriteByte('\n')
	}
	b.WriteString(repl.Apply(markup.Format(body.String(), e.Options.Content) + "\n"))
	return b.String(), nil
}

// Replacements prepares entry scope token table. Every child is rendered
// once and reused by all tokens referring to it.
func (e *Entry) Replacements() (*Replacements, error) {
	boxes := renderBoxes(e.Boxes, markup.ContainerNote)
	items := renderBoxes(e.Items, markup.ContainerItem)

	tables := make([]string, 0, len(e.Tables))
	for i, t := range e.Tables {
		text, err := t.Render()
		if err != nil {
			return nil, fmt.Errorf("entry %q, table %d: %w", e.Title, i, err)
		}
		tables = append(tables, text)
	}

	r := NewReplacements()
	r.SetVerbatim(TokenList, e.List.Render(ListBullet))
	r.Set(TokenUList, e.List.Render(ListLoose))
	r.Set(TokenH2List, e.List.Render(ListHeading2))
	r.Set(TokenH3List, e.List.Render(ListHeading3))
	r.Set(TokenH4List, e.List.Render(ListHeading4))
	r.SetIndexed(BoxToken, boxes)
	r.SetIndexed(ItemToken, items)
	r.SetIndexed(TableToken, tables)
	r.Set(TokenItems, ItemGrid(items))
	r.Set(TokenAllItems, Concat(items))
	r.Set(TokenBoxes, Concat(boxes))
	r.Set(TokenBoxes2, InterleaveBoxes(boxes))
	r.Set(TokenTables, strings.Join(tables, "\n"))
	return r, nil
}

func renderBoxes(boxes []BoxEntry, container string) []string {
	out := make([]string, 0, len(boxes))
	for i := range boxes {
		out = append(out, boxes[i].Render(container))
	}
	return out
}
