package bestiary

import (
	"fmt"
	"strings"

	"rbc/markup"
)

// Render produces creature stat block. Every ability reference must resolve.
func (b *BeastEntry) Render(abilities AbilityResolver) (string, error) {
	s := b.Stats()

	var out strings.Builder
	out.WriteString("#### ")
	out.WriteString(b.Title)
	if len(b.Description) > 0 {
		out.WriteByte('\n')
		out.WriteString(b.Description)
	}
	out.WriteString("\n" + markup.ContainerItem + "(")
	fmt.Fprintf(&out, "\n# %s", b.Rarity)
	fmt.Fprintf(&out, "\n## %s", b.Type)
	out.WriteString("\n-")

	wounds := fmt.Sprint(s.Wounds)
	if b.Durability > 0 {
		wounds += fmt.Sprintf("(%d)", b.Durability)
	}
	fmt.Fprintf(&out, "\n*DEF* **%d**, *ARM* **%d**, *WND* **%s**, *VIG* **%d**, *WIL* **%d**",
		s.Defense, s.Soak, wounds, s.Vigour, s.Willpower)
	fmt.Fprintf(&out, "\n*Perception:* *Range* **%dm**, *Score* **%d**; *Initiative* **+%d**",
		s.PerceptionRange, s.PerceptionScore, s.Initiative)
	fmt.Fprintf(&out, "\n*Movement Points* **%d**; *Carrying Capacity* **%d**",
		s.MovementPoints, s.CarryingCapacity)
	fmt.Fprintf(&out, "\n*Size* **%s [%d]**, ENC **%d**; *Threat level* **%d**",
		s.SizeCategory, s.Size, b.Encumbrance, s.ThreatLevel)

	fmt.Fprintf(&out, "\n#### Action Points [%d]", s.ActionPoints)
	out.WriteString("\n-")
	out.WriteString("\n \n")
	for _, a := range b.Attacks {
		out.WriteString(b.renderAttack(a))
	}

	out.WriteString("\n#### Abilities")
	out.WriteString("\n-")
	for _, name := range b.Abilities {
		a, err := abilities.Resolve(name)
		if err != nil {
			return "", fmt.Errorf("beast %q: %w", b.Title, err)
		}
		out.WriteByte('\n')
		out.WriteString(a.Render())
		out.WriteByte('\n')
	}
	out.WriteString("\n)")
	return out.String(), nil
}

func (b *BeastEntry) renderAttack(a AttackEntry) string {
	return fmt.Sprintf("**%s** *ATT* **%+d**, *DMG* **%+d**, *RNG* **%dm**, *%s*\n",
		a.Title, b.AttackBonus(a), b.DamageBonus(a), a.Range, a.Traits)
}
