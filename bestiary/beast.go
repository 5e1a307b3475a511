// Package bestiary renders the creature chapter: stat blocks with derived
// statistics, creature categories and the encounter table ordered by threat.
package bestiary

import (
	"rbc/common"
)

// AttackEntry is a single creature attack.
type AttackEntry struct {
	Title  string            `yaml:"title" validate:"required"`
	Type   common.AttackType `yaml:"type"`
	Damage int               `yaml:"damage" validate:"min=0,max=4"`
	Range  int               `yaml:"range" validate:"min=0"`
	Traits string            `yaml:"traits,omitempty"`
}

// BeastEntry holds raw creature attributes only. Everything else is derived
// on demand, see stats.go.
type BeastEntry struct {
	Title        string              `yaml:"title" validate:"required"`
	Description  string              `yaml:"description,omitempty"`
	Encumbrance  int                 `yaml:"encumbrance" validate:"min=0"`
	Type         common.CreatureType `yaml:"type"`
	Rarity       common.Rarity       `yaml:"rarity"`
	Perception   int                 `yaml:"perception" validate:"min=0,max=4"`
	CloseCombat  int                 `yaml:"close_combat" validate:"min=0,max=4"`
	RangedCombat int                 `yaml:"ranged_combat" validate:"min=0,max=4"`
	Conditioning int                 `yaml:"conditioning" validate:"min=0,max=4"`
	Conviction   int                 `yaml:"conviction" validate:"min=0,max=4"`
	Athletics    int                 `yaml:"athletics" validate:"min=0,max=4"`
	SoakBonus    int                 `yaml:"soak_bonus" validate:"min=0,max=4"`
	Durability   int                 `yaml:"durability" validate:"min=0,max=3"`
	Attacks      []AttackEntry       `yaml:"attacks,omitempty" validate:"dive"`
	Abilities    []string            `yaml:"abilities,omitempty"`
}
