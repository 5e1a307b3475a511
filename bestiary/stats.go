package bestiary

import (
	"rbc/common"
)

// Stats is a snapshot of all derived statistics of a beast.
type Stats struct {
	Size                int
	SizeCategory        common.CreatureSize
	Wounds              int
	Soak                int
	Defense             int
	DefenseValue        int
	Vigour              int
	Willpower           int
	PerceptionRange     int
	PerceptionScore     int
	Initiative          int
	MovementPoints      int
	CarryingCapacity    int
	ActionPoints        int
	HighestAttackDamage int
	ThreatLevel         int
}

// Stats computes every derived statistic in dependency order.
func (b *BeastEntry) Stats() Stats {
	return Stats{
		Size:                b.Size(),
		SizeCategory:        b.SizeCategory(),
		Wounds:              b.Wounds(),
		Soak:                b.Soak(),
		Defense:             b.Defense(),
		DefenseValue:        b.DefenseValue(),
		Vigour:              b.Vigour(),
		Willpower:           b.Willpower(),
		PerceptionRange:     b.PerceptionRange(),
		PerceptionScore:     b.PerceptionScore(),
		Initiative:          b.Initiative(),
		MovementPoints:      b.MovementPoints(),
		CarryingCapacity:    b.CarryingCapacity(),
		ActionPoints:        b.ActionPoints(),
		HighestAttackDamage: b.HighestAttackDamage(),
		ThreatLevel:         b.ThreatLevel(),
	}
}

// Size is signed and unclamped, small creatures go negative.
func (b *BeastEntry) Size() int {
	return floorDiv(b.Encumbrance, 5) - 5
}

// SizeCategory clamps size for display only.
func (b *BeastEntry) SizeCategory() common.CreatureSize {
	return common.CreatureSize(min(max(b.Size(), int(common.CreatureSizeTiny)), int(common.CreatureSizeHumongous)))
}

func (b *BeastEntry) Wounds() int {
	return max(1+b.Conditioning+b.Size(), 1)
}

func (b *BeastEntry) Soak() int {
	return max(b.SoakBonus+floorDiv(b.Size(), 5), 0)
}

// Defense is the displayed value, never below 1.
func (b *BeastEntry) Defense() int {
	return max(6+b.CloseCombat-b.Size(), 1)
}

// DefenseValue feeds threat level calculation and may be 0.
func (b *BeastEntry) DefenseValue() int {
	return max(6+b.CloseCombat-b.Size(), 0)
}

func (b *BeastEntry) Vigour() int {
	return 6 + b.Conditioning + b.Size()
}

func (b *BeastEntry) Willpower() int {
	return 6 + b.Conviction + b.Size()
}

func (b *BeastEntry) PerceptionRange() int {
	return (b.Perception + 1) * 20
}

func (b *BeastEntry) PerceptionScore() int {
	return b.Perception + 1
}

func (b *BeastEntry) Initiative() int {
	return b.Perception
}

func (b *BeastEntry) MovementPoints() int {
	return 5 + b.Athletics*2 + floorDiv(b.Size(), 2)
}

func (b *BeastEntry) CarryingCapacity() int {
	return b.Encumbrance + b.Conditioning*(10+b.Size()*5)
}

func (b *BeastEntry) ActionPoints() int {
	return max(1+b.CloseCombat, 1+b.RangedCombat)
}

// skill returns combat skill attack type relies on.
func (b *BeastEntry) skill(t common.AttackType) int {
	if t == common.AttackTypeRanged {
		return b.RangedCombat
	}
	return b.CloseCombat
}

// HighestAttackDamage is 0 for creatures without attacks.
func (b *BeastEntry) HighestAttackDamage() int {
	size, highest := b.Size(), 0
	for _, a := range b.Attacks {
		highest = max(highest, a.Damage+size+b.skill(a.Type))
	}
	return highest
}

func (b *BeastEntry) ThreatLevel() int {
	defense := b.DefenseValue() + b.Soak()
	endurance := b.Wounds() + b.Durability
	offense := (1 + b.CloseCombat) * b.HighestAttackDamage()
	return floorDiv(defense*endurance+offense, 10) + 1
}

// AttackBonus for the attack made by beast of the given size.
func (b *BeastEntry) AttackBonus(a AttackEntry) int {
	return b.skill(a.Type) + floorDiv(b.Size(), 10)
}

func (b *BeastEntry) DamageBonus(a AttackEntry) int {
	return max(a.Damage+b.Size(), 0)
}

// floorDiv rounds toward negative infinity, Go division truncates toward zero.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
