package bestiary

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"rbc/markup"
)

// DefaultEncounterTitle heads encounter table unless configured otherwise.
const DefaultEncounterTitle = "Dangerous Encounters"

// Encounter is a beast paired with its threat level.
type Encounter struct {
	Beast       *BeastEntry
	ThreatLevel int
}

// SortByThreat orders beasts by ascending threat level. Sort is stable, beasts
// of equal threat keep declaration order.
func SortByThreat(beasts []*BeastEntry) []Encounter {
	out := make([]Encounter, 0, len(beasts))
	for _, b := range beasts {
		out = append(out, Encounter{Beast: b, ThreatLevel: b.ThreatLevel()})
	}
	slices.SortStableFunc(out, func(a, b Encounter) int {
		return cmp.Compare(a.ThreatLevel, b.ThreatLevel)
	})
	return out
}

// EncounterTable is a d% roll table of all beasts of the chapter, with
// danger level growing every ten rows.
type EncounterTable struct {
	Title   string
	Chapter *Chapter
}

func NewEncounterTable(title string, chapter *Chapter) *EncounterTable {
	if len(title) == 0 {
		title = DefaultEncounterTitle
	}
	return &EncounterTable{Title: title, Chapter: chapter}
}

func (t *EncounterTable) RenderChapter() (string, error) {
	if t.Chapter == nil {
		return "", nil
	}

	var out strings.Builder
	out.WriteString(markup.Heading(1, t.Title))
	out.WriteString("-")
	out.WriteString(markup.Separator(markup.RowBreak))
	out.WriteString("d% | Result | DL\n")
	out.WriteString(markup.TableSeparator)
	for i, e := range SortByThreat(t.Chapter.Beasts()) {
		roll := i + 1
		fmt.Fprintf(&out, "\n%d | %s [%s %s %d] | %d",
			roll, e.Beast.Title, e.Beast.Type, e.Beast.Rarity, e.ThreatLevel, dangerLevel(roll))
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// dangerLevel is ceil(roll/10) for positive rolls.
func dangerLevel(roll int) int {
	return (roll + 9) / 10
}
