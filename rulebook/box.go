package rulebook

import (
	"strings"
)

// BoxEntry is a boxed sub-entry, rendered inside "note" container when used
// as a box and inside "item" container when used as an item.
type BoxEntry struct {
	H1      string   `yaml:"h1,omitempty"`
	H2      string   `yaml:"h2,omitempty"`
	H3      string   `yaml:"h3,omitempty"`
	H4      string   `yaml:"h4,omitempty"`
	Content []string `yaml:"content,omitempty"`
	List    List     `yaml:"list,omitempty"`
}

// Render wraps box into named container. Paragraph tokens are resolved
// against this box own list only.
func (bx *BoxEntry) Render(container string) string {
	var b strings.Builder

	b.WriteString(container)
	b.WriteByte('(')
	writeBoxHeading(&b, "#", bx.H1)
	writeBoxHeading(&b, "##", bx.H2)
	b.WriteString("\n-")
	writeBoxHeading(&b, "###", bx.H3)
	writeBoxHeading(&b, "####", bx.H4)

	var repl *Replacements
	if len(bx.Content) > 0 {
		repl = bx.replacements()
	}
	for _, p := range bx.Content {
		if text := repl.Apply(p); len(text) > 0 {
			b.WriteByte('\n')
			b.WriteString(text)
		}
	}
	b.WriteString("\n)")
	return b.String()
}

func (bx *BoxEntry) replacements() *Replacements {
	r := NewReplacements()
	r.SetVerbatim(TokenList, bx.List.Render(ListBullet))
	r.Set(TokenUList, bx.List.Render(ListLoose))
	r.Set(TokenH3List, bx.List.Render(ListHeading3))
	r.Set(TokenH4List, bx.List.Render(ListHeading4))
	return r
}

// headings inside boxes are glued to the marker, renderer expects that
func writeBoxHeading(b *strings.Builder, marker, text string) {
	if len(text) == 0 {
		return
	}
	b.WriteByte('\n')
	b.WriteString(marker)
	b.WriteString(text)
}
