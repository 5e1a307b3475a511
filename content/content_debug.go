package content

import (
	"slices"
	"sort"

	"github.com/maruel/natural"

	"rbc/utils/debug"
)

// String returns readable tree of prepared content, with computed beast
// statistics. It exists solely for inspection in debug reports.
func (c *Content) String() string {
	if c == nil || c.Source == nil {
		return "<nil Content>"
	}
	src := c.Source

	tw := debug.NewTreeWriter()
	tw.Line(0, "Source %q build %s", c.SrcName, c.BuildID)
	tw.Text(1, "title", src.Title)
	tw.Text(1, "watermark", src.Watermark)

	tw.Line(0, "Chapters: %d", len(src.Chapters))
	for i := range src.Chapters {
		ch := &src.Chapters[i]
		tw.Line(1, "Chapter[%d] %q entries[%d]", i, ch.Title, len(ch.Entries))
		for j := range ch.Entries {
			e := &ch.Entries[j]
			tw.Line(2, "Entry[%d] %q title[%s] content[%s] paragraphs[%d] list[%d] boxes[%d] items[%d] tables[%d]",
				j, e.Title, e.Options.Title, e.Options.Content, len(e.Content), len(e.List), len(e.Boxes), len(e.Items), len(e.Tables))
		}
	}

	if eq := src.Equipment; eq != nil {
		tw.Line(0, "Equipment: categories[%d] traits[%d]", len(eq.Categories), len(eq.Traits))
		for i := range eq.Categories {
			cat := &eq.Categories[i]
			tw.Line(1, "Category[%d] %q kind[%s] items[%d]", i, cat.Name, cat.Kind(), len(cat.Items))
			for j := range cat.Items {
				it := &cat.Items[j]
				tw.Line(2, "Item %q kind[%s] enc[%d] cost[%d] rarity[%s]", it.Name, it.Kind(), it.Encumbrance, it.Cost, it.Rarity)
			}
		}
		names := make([]string, 0, len(eq.Traits))
		for _, t := range eq.SortedTraits() {
			names = append(names, t.Name)
		}
		tw.List(1, "Traits", names)
		tw.List(1, "Undefined traits", eq.UnknownTraits())
	}

	if b := src.Bestiary; b != nil {
		tw.Line(0, "Bestiary %q: categories[%d] abilities[%d]", b.Title, len(b.Categories), len(b.Abilities))
		for _, beast := range b.Beasts() {
			s := beast.Stats()
			tw.Line(1, "Beast %q %s %s size[%d %s] threat[%d]", beast.Title, beast.Type, beast.Rarity, s.Size, s.SizeCategory, s.ThreatLevel)
			tw.Line(2, "wounds[%d] soak[%d] defense[%d] ap[%d] attack_damage[%d]", s.Wounds, s.Soak, s.Defense, s.ActionPoints, s.HighestAttackDamage)
			tw.List(2, "Abilities", beast.Abilities)
		}
		names := make([]string, 0, len(b.Abilities))
		for _, a := range b.Abilities {
			names = append(names, a.Title)
		}
		sort.Sort(natural.StringSlice(names))
		tw.List(1, "Ability table", slices.Compact(names))
		tw.List(1, "Duplicate abilities", b.AbilityTable().Duplicates())
	}
	return tw.String()
}
