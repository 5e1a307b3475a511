package common

import (
	"errors"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestParagraphFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ParagraphFormat
		heading int
	}{
		{"none", ParagraphFormatNone, 0},
		{"H1", ParagraphFormatH1, 1},
		{"h3", ParagraphFormatH3, 3},
		{"h5", ParagraphFormatH5, 5},
		{"Item", ParagraphFormatItem, 0},
		{"note", ParagraphFormatNote, 0},
		{"RULES", ParagraphFormatRules, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParagraphFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseParagraphFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseParagraphFormat() = %v, want %v", got, tt.want)
			}
			if got.Heading() != tt.heading {
				t.Errorf("Heading() = %d, want %d", got.Heading(), tt.heading)
			}
		})
	}

	_, err := ParseParagraphFormat("h6")
	if err == nil || !strings.Contains(err.Error(), "none, h1, h2") {
		t.Errorf("ParseParagraphFormat(h6) error = %v", err)
	}
	if names := ParagraphFormatNames(); len(names) != 9 || names[0] != "none" {
		t.Errorf("ParagraphFormatNames() = %v", names)
	}
}

func TestCreatureSize(t *testing.T) {
	tests := []struct {
		size CreatureSize
		name string
	}{
		{CreatureSizeTiny, "Tiny"},
		{CreatureSizeMedium, "Medium"},
		{CreatureSizeTitanic, "Titanic"},
		{CreatureSizeTiny - 1, "CreatureSize(-3)"},
		{CreatureSizeTitanic + 1, "CreatureSize(13)"},
	}
	for _, tt := range tests {
		if got := tt.size.String(); got != tt.name {
			t.Errorf("CreatureSize(%d).String() = %q, want %q", int(tt.size), got, tt.name)
		}
	}
	if !CreatureSizeTiny.IsValid() || (CreatureSizeTitanic + 1).IsValid() {
		t.Error("IsValid() does not match declared range")
	}
	if CreatureSizeMedium != 0 {
		t.Errorf("CreatureSizeMedium = %d, want 0", CreatureSizeMedium)
	}

	var s CreatureSize
	if err := s.UnmarshalText([]byte("large")); err != nil || s != CreatureSizeLarge {
		t.Errorf("UnmarshalText(large) = %v, %v", s, err)
	}
}

func TestEnums_YAML(t *testing.T) {
	var rec struct {
		Type   CreatureType `yaml:"type"`
		Rarity Rarity       `yaml:"rarity"`
		Attack AttackType   `yaml:"attack"`
		Action ActionType   `yaml:"action"`
	}
	src := "type: horror\nrarity: Legendary\nattack: RANGED\naction: Death\n"
	if err := yaml.Unmarshal([]byte(src), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if rec.Type != CreatureTypeHorror || rec.Rarity != RarityLegendary || rec.Attack != AttackTypeRanged || rec.Action != ActionTypeDeath {
		t.Errorf("decoded %+v", rec)
	}

	out, err := yaml.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := "type: Horror\nrarity: Legendary\nattack: Ranged\naction: Death\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}

func TestEnums_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		into     interface{ UnmarshalText([]byte) error }
		in       string
		want     string
		sentinel error
	}{
		{"creature type", new(CreatureType), "Dragon", "not a valid CreatureType", ErrInvalidCreatureType},
		{"rarity", new(Rarity), "Mythic", "not a valid Rarity", ErrInvalidRarity},
		{"attack type", new(AttackType), "", "not a valid AttackType", ErrInvalidAttackType},
		{"action type", new(ActionType), "Reaction", "not a valid ActionType", ErrInvalidActionType},
		{"creature size", new(CreatureSize), "Big", "not a valid CreatureSize", ErrInvalidCreatureSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.into.UnmarshalText([]byte(tt.in))
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("UnmarshalText(%q) error = %v, want %v", tt.in, err, tt.sentinel)
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("UnmarshalText(%q) error = %v, want %q", tt.in, err, tt.want)
			}
		})
	}
}
