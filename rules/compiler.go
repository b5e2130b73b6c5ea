package rules

// Rule categories.
const (
	CategoryCombat  = "combat"
	CategoryChatter = "chatter"
)

// CombatRules is the per-unit action rule set: throw when the bomb beats
// the shot and can be thrown safely, else shoot, else hunker. A
// non-exclusive rule labels the unit with its destination.
func CombatRules() []*Rule {
	return []*Rule{
		{
			Name:         "throw-bomb",
			Priority:     300,
			Category:     CategoryCombat,
			Exclusive:    true,
			ConditionSrc: `BombDamage() > 0 && BombDamage() > ShootDamage() && BombsLeft() > 0 && LegalThrow()`,
			Action:       ActionThrow,
		},
		{
			Name:         "shoot-target",
			Priority:     200,
			Category:     CategoryCombat,
			Exclusive:    true,
			ConditionSrc: `HasShootTarget()`,
			Action:       ActionShoot,
		},
		{
			Name:         "hunker-down",
			Priority:     100,
			Category:     CategoryCombat,
			Exclusive:    true,
			ConditionSrc: `true`,
			Action:       ActionHunker,
		},
		{
			Name:         "announce-move",
			Priority:     50,
			Category:     CategoryChatter,
			Exclusive:    false,
			ConditionSrc: `HasDest()`,
			Action:       ActionMessage,
		},
	}
}
