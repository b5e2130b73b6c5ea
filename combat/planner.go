// Package combat picks splash bomb landing cells and shoot targets for a
// single unit against a roster snapshot.
package combat

import "github.com/nstehr/soakbot/model"

const (
	// BombRange is the Manhattan throw range of a splash bomb.
	BombRange = 4
	// SplashDamage is dealt to every unit inside the 3x3 footprint.
	SplashDamage = 30

	escapeFactor  = 0.45 // share of splash damage kept for a target with one way out
	wanderChance  = 0.15 // chance an enemy just outside the footprint steps into it
	hunkerPenalty = 0.25 // extra damage reduction assumed for a hunkered target
	minShotScore  = 2    // shoot targets must score above this
	killBonus     = 100
	halfwayBonus  = 50
)

// Planner evaluates combat options against the static world tables.
type Planner struct {
	world *model.World
}

func NewPlanner(w *model.World) *Planner {
	return &Planner{world: w}
}

// DamageAt is the damage shooter would deal to a unit standing at (x, y),
// after cover and an optional hunker reduction.
func (p *Planner) DamageAt(shooter *model.Unit, x, y int, hunkered bool) float64 {
	target := p.world.Grid.At(x, y)
	if target == nil {
		return 0
	}
	factor := 1 - p.world.Cover.Reduction(target, shooter.X, shooter.Y)
	if hunkered {
		factor -= hunkerPenalty
	}
	if factor <= 0 {
		return 0
	}

	power := float64(shooter.Profile.SoakingPower)
	switch d := shooter.DistanceTo(x, y); {
	case d <= shooter.Profile.OptimalRange:
		return power * factor
	case d <= 2*shooter.Profile.OptimalRange:
		return power / 2 * factor
	default:
		return 0
	}
}
