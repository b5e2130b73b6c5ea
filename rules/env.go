package rules

import (
	"github.com/nstehr/soakbot/combat"
	"github.com/nstehr/soakbot/model"
)

// RuleEnv is everything a rule may look at for one unit. Unit and every unit
// reachable through Bomb, Shot and Snapshot live in the turn's working
// snapshot, so actions may soak them.
type RuleEnv struct {
	Unit     *model.Unit
	Snapshot *model.Roster
	Planner  *combat.Planner
	Dest     *model.Cell
	Bomb     *combat.Explosion // nil when no landing cell passed the threshold
	Shot     *combat.Shot      // nil when no target is in reach
	Turn     int
}

// BombDamage is the signed splash damage of the chosen landing cell.
func (e RuleEnv) BombDamage() float64 {
	if e.Bomb == nil || e.Bomb.Target == nil {
		return 0
	}
	return float64(e.Bomb.Damage)
}

// ShootDamage is the damage the selected shot would deal from Dest to where
// the target stands now.
func (e RuleEnv) ShootDamage() float64 {
	if e.Shot == nil || e.Shot.Target == nil || e.Planner == nil {
		return 0
	}
	return e.Planner.DamageAt(e.Unit, e.Shot.Target.X, e.Shot.Target.Y, false)
}

func (e RuleEnv) BombsLeft() int {
	if e.Unit == nil {
		return 0
	}
	return e.Unit.Bombs
}

// LegalThrow reports whether the chosen landing cell can be bombed from Dest
// without splashing the thrower.
func (e RuleEnv) LegalThrow() bool {
	if e.Bomb == nil {
		return false
	}
	return combat.IsLegalThrow(e.Dest, e.Bomb.Target)
}

// HasShootTarget reports whether the selected target is still standing in
// the working snapshot.
func (e RuleEnv) HasShootTarget() bool {
	return e.Shot != nil && e.Shot.Target != nil && e.Shot.Target.Active
}

// HasDest reports whether the unit was given a destination this turn.
func (e RuleEnv) HasDest() bool {
	return e.Unit != nil && e.Dest != nil
}
