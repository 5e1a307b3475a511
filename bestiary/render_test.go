package bestiary

import (
	"errors"
	"strings"
	"testing"

	"rbc/common"
)

func TestBeastEntry_Render(t *testing.T) {
	b := referenceBeast()
	b.Description = "Hunts at night."
	b.Durability = 1
	b.Abilities = []string{"Pounce"}

	table := NewAbilityTable([]AbilityEntry{
		{Title: "Pounce", Type: common.ActionTypeMovement, Description: "Leaps."},
	})
	got, err := b.Render(table)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"#### Ravager\nHunts at night.\nitem(\n# Common\n## Lizard\n-",
		"\n*DEF* **8**, *ARM* **0**, *WND* **2(1)**, *VIG* **7**, *WIL* **6**",
		"\n*Perception:* *Range* **20m**, *Score* **1**; *Initiative* **+0**",
		"\n*Movement Points* **5**; *Carrying Capacity* **35**",
		"\n*Size* **Medium [0]**, ENC **25**; *Threat level* **4**",
		"\n#### Action Points [3]\n-\n \n**Claw** *ATT* **+2**, *DMG* **+2**, *RNG* **1m**, *sharp*\n",
		"\n#### Abilities\n-\n**Pounce [Movement] -** Leaps.\n\n)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in\n%s", want, got)
		}
	}
}

func TestBeastEntry_RenderUnknownAbility(t *testing.T) {
	b := referenceBeast()
	b.Abilities = []string{"pounce"}

	table := NewAbilityTable([]AbilityEntry{{Title: "Pounce"}})
	_, err := b.Render(table)

	var unknown *UnknownAbilityError
	if !errors.As(err, &unknown) {
		t.Fatalf("Render() error = %v, want UnknownAbilityError", err)
	}
	if unknown.Name != "pounce" {
		t.Errorf("UnknownAbilityError.Name = %q", unknown.Name)
	}
}

func TestAbilityTable_Duplicates(t *testing.T) {
	table := NewAbilityTable([]AbilityEntry{
		{Title: "Bite", Description: "first"},
		{Title: "Claw"},
		{Title: "Bite", Description: "second"},
	})

	if dups := table.Duplicates(); len(dups) != 1 || dups[0] != "Bite" {
		t.Errorf("Duplicates() = %v, want [Bite]", dups)
	}
	a, err := table.Resolve("Bite")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if a.Description != "first" {
		t.Errorf("Resolve() = %q, first definition must win", a.Description)
	}
}

func TestCategory_Render(t *testing.T) {
	c := Category{
		Title:  "Lizards",
		Beasts: []BeastEntry{*referenceBeast(), *referenceBeast(), *referenceBeast()},
	}
	got, err := c.Render(NewAbilityTable(nil))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(got, "## Lizards\n-\n/\n#### Ravager") {
		t.Errorf("Render() unexpected head: %q", got[:min(len(got), 40)])
	}
	if n := strings.Count(got, "\n)\n|\n"); n != 2 {
		t.Errorf("column breaks = %d, want 2", n)
	}
	if !strings.HasSuffix(got, "\n)\n|\n\n/\n") {
		t.Errorf("Render() unexpected tail: %q", got[max(0, len(got)-20):])
	}
}

func TestChapter_RenderChapter(t *testing.T) {
	beast := referenceBeast()
	beast.Abilities = []string{"Missing"}
	c := &Chapter{
		Title:      "Bestiary",
		Categories: []Category{{Title: "All", Beasts: []BeastEntry{*beast}}},
	}
	if _, err := c.RenderChapter(); err == nil {
		t.Fatal("RenderChapter() expected error for unknown ability")
	}

	c.Abilities = []AbilityEntry{{Title: "Missing"}}
	got, err := c.RenderChapter()
	if err != nil {
		t.Fatalf("RenderChapter() error = %v", err)
	}
	if !strings.HasPrefix(got, "# Bestiary\n-\n## All\n-\n#### Ravager") {
		t.Errorf("RenderChapter() = %q", got[:min(len(got), 60)])
	}
	if c.Output() != got {
		t.Error("Output() does not keep last rendered text")
	}
}

func TestBeastEntry_RenderAttackSign(t *testing.T) {
	tests := []struct {
		name  string
		beast BeastEntry
		att   AttackEntry
		want  string
	}{
		{
			name:  "tiny creature with low skill",
			beast: BeastEntry{Title: "Rat", Encumbrance: 0},
			att:   AttackEntry{Title: "Nibble", Type: common.AttackTypeMelee, Damage: 1, Traits: "weak"},
			want:  "**Nibble** *ATT* **-1**, *DMG* **+0**, *RNG* **0m**, *weak*\n",
		},
		{
			name:  "zero bonus",
			beast: BeastEntry{Title: "Rat", Encumbrance: 0, RangedCombat: 1},
			att:   AttackEntry{Title: "Spit", Type: common.AttackTypeRanged, Range: 5},
			want:  "**Spit** *ATT* **+0**, *DMG* **+0**, *RNG* **5m**, **\n",
		},
		{
			name:  "huge creature",
			beast: BeastEntry{Title: "Wyrm", Encumbrance: 100, CloseCombat: 2},
			att:   AttackEntry{Title: "Crush", Type: common.AttackTypeMelee, Damage: 1, Range: 2, Traits: "heavy"},
			want:  "**Crush** *ATT* **+3**, *DMG* **+16**, *RNG* **2m**, *heavy*\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.beast.renderAttack(tt.att); got != tt.want {
				t.Errorf("renderAttack() = %q, want %q", got, tt.want)
			}
		})
	}
}
