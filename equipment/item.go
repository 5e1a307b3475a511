// Package equipment renders the equipment catalog: per category item tables,
// category entries and the alphabetical list of item traits.
package equipment

import (
	"fmt"
	"reflect"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"rbc/common"
)

// Item kinds as authored in sources.
const (
	KindGeneral    = "item"
	KindWeapon     = "weapon"
	KindArmour     = "armour"
	KindGear       = "gear"
	KindConsumable = "consumable"
)

// Stats is a closed set of item variants, each contributing its own table
// columns. See columns for the only place variants are told apart.
type Stats interface {
	Kind() string
	sealed()
}

type GeneralStats struct{}

type WeaponStats struct {
	Range  int `yaml:"range"`
	Damage int `yaml:"damage"`
}

type ArmourStats struct {
	Armour     int `yaml:"armour"`
	Durability int `yaml:"durability"`
}

type GearStats struct {
	Slot     string `yaml:"slot"`
	Capacity int    `yaml:"capacity"`
}

type ConsumableStats struct {
	Toxicity int `yaml:"toxicity"`
}

func (GeneralStats) Kind() string    { return KindGeneral }
func (WeaponStats) Kind() string     { return KindWeapon }
func (ArmourStats) Kind() string     { return KindArmour }
func (GearStats) Kind() string       { return KindGear }
func (ConsumableStats) Kind() string { return KindConsumable }

func (GeneralStats) sealed()    {}
func (WeaponStats) sealed()     {}
func (ArmourStats) sealed()     {}
func (GearStats) sealed()       {}
func (ConsumableStats) sealed() {}

// columns returns variant specific header and row cells.
func columns(s Stats) (header, cells []string) {
	switch v := s.(type) {
	case WeaponStats:
		return []string{"RNG", "DMG"}, []string{fmt.Sprintf("%dm", v.Range), fmt.Sprintf("+%d", v.Damage)}
	case ArmourStats:
		return []string{"ARM", "DUR"}, []string{fmt.Sprint(v.Armour), fmt.Sprint(v.Durability)}
	case GearStats:
		return []string{"Slot", "CAP"}, []string{v.Slot, fmt.Sprint(v.Capacity)}
	case ConsumableStats:
		return []string{"Toxicity"}, []string{fmt.Sprint(v.Toxicity)}
	default:
		return nil, nil
	}
}

// TraitInstance references catalog trait by name, optionally with value.
type TraitInstance struct {
	Name  string `yaml:"name" validate:"required"`
	Value string `yaml:"value,omitempty"`
}

func (t TraitInstance) String() string {
	if len(t.Value) == 0 {
		return t.Name
	}
	return t.Name + " [" + t.Value + "]"
}

// Item is a catalog entry of one of the variants.
type Item struct {
	Name        string          `yaml:"name" validate:"required"`
	Description string          `yaml:"description,omitempty"`
	Encumbrance int             `yaml:"encumbrance" validate:"min=0"`
	Cost        int             `yaml:"cost" validate:"min=0"`
	Rarity      common.Rarity   `yaml:"rarity"`
	Traits      []TraitInstance `yaml:"traits,omitempty" validate:"dive"`
	Stats       Stats           `yaml:"-"`
}

// plainItem has no UnmarshalYAML.
type plainItem Item

// Kind of the item variant, items without stats are general items.
func (it *Item) Kind() string {
	if it.Stats == nil {
		return KindGeneral
	}
	return it.Stats.Kind()
}

// Header renders table header for items of the same variant as this one.
func (it *Item) Header() string {
	header, _ := columns(it.Stats)
	cells := append(append([]string{"Name"}, header...), "ENC", "Cost", "Rarity", "Traits ")
	return strings.Join(cells, " | ") + "\n-- | --\n"
}

// Row renders item table row.
func (it *Item) Row() string {
	_, variant := columns(it.Stats)

	traits := make([]string, 0, len(it.Traits))
	for _, t := range it.Traits {
		traits = append(traits, t.String())
	}

	cells := append([]string{it.Name}, variant...)
	cells = append(cells,
		fmt.Sprint(it.Encumbrance),
		fmt.Sprintf("%dc", it.Cost),
		it.Rarity.String(),
		strings.Join(traits, ", "),
	)
	return strings.Join(cells, " | ") + "\n"
}

// UnmarshalYAML decodes common fields and then variant fields selected by
// "kind" (general item when absent).
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	var (
		base  plainItem
		stats Stats
		err   error
	)
	switch kind := strings.ToLower(strings.TrimSpace(head.Kind)); kind {
	case "", KindGeneral:
		stats, err = decodeVariant[GeneralStats](node, &base)
	case KindWeapon:
		stats, err = decodeVariant[WeaponStats](node, &base)
	case KindArmour, "armor":
		stats, err = decodeVariant[ArmourStats](node, &base)
	case KindGear:
		stats, err = decodeVariant[GearStats](node, &base)
	case KindConsumable:
		stats, err = decodeVariant[ConsumableStats](node, &base)
	default:
		return fmt.Errorf("line %d: unknown item kind %q", node.Line, head.Kind)
	}
	if err != nil {
		return err
	}

	*it = Item(base)
	it.Stats = stats
	return nil
}

func decodeVariant[T Stats](node *yaml.Node, base *plainItem) (Stats, error) {
	var v struct {
		Kind    string    `yaml:"kind"`
		Base    plainItem `yaml:",inline"`
		Variant T         `yaml:",inline"`
	}
	if err := checkFields(node, v.Variant.Kind(), reflect.TypeOf(v)); err != nil {
		return nil, err
	}
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	*base = v.Base
	return v.Variant, nil
}

// checkFields rejects keys which do not belong to the item variant. Decoding
// nodes inside UnmarshalYAML does not inherit strictness of the outer
// decoder, so unknown fields have to be caught here.
func checkFields(node *yaml.Node, kind string, typ reflect.Type) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	known := make(map[string]bool)
	yamlFieldNames(typ, known)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !known[key.Value] {
			return fmt.Errorf("line %d: field %s not allowed for %s item", key.Line, key.Value, kind)
		}
	}
	return nil
}

func yamlFieldNames(typ reflect.Type, names map[string]bool) {
	for i := range typ.NumField() {
		f := typ.Field(i)
		tag := f.Tag.Get("yaml")
		name, opts, _ := strings.Cut(tag, ",")
		switch {
		case name == "-":
		case strings.Contains(opts, "inline"):
			yamlFieldNames(f.Type, names)
		case len(name) > 0:
			names[name] = true
		case f.IsExported():
			names[strings.ToLower(f.Name)] = true
		}
	}
}
