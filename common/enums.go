// Package common keeps enumerations shared by content loading, rendering and
// configuration. Values are authored by name in YAML sources and rendered by
// name in the output document.
package common

//go:generate go tool go-enum --marshal --nocase --names --file enums.go

// Paragraph kind - governs how a title or a body renders.
// ENUM(none, h1, h2, h3, h4, h5, item, note, rules)
type ParagraphFormat int

// Heading returns heading level for h1..h5 and 0 for everything else.
func (x ParagraphFormat) Heading() int {
	if x >= ParagraphFormatH1 && x <= ParagraphFormatH5 {
		return int(x-ParagraphFormatH1) + 1
	}
	return 0
}

// Creature size category, derived from size value.
// ENUM(Tiny=-2, Small, Medium, Large, Huge, Enormous, Gigantic, Tremendous, Mountainous, Humongous, Gargantuan, Vast, Colossal, Immense, Titanic)
type CreatureSize int

// Creature type tag.
// ENUM(Lizard, Mammal, Undead, Insect, Cephalopod, Bird, Automata, Character, Extraplanar, Horror)
type CreatureType int

// Rarity of creatures and items.
// ENUM(Common, Uncommon, Rare, Legendary)
type Rarity int

// Attack type selects which combat skill applies.
// ENUM(Melee, Ranged)
type AttackType int

// Action type of a creature ability.
// ENUM(Movement, Action, Main, Passive, Initiative, Disease, Attack, Death)
type ActionType int
