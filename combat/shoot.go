package combat

import (
	"log/slog"

	"github.com/nstehr/soakbot/model"
)

// Shot is the outcome of shoot target selection.
type Shot struct {
	Target     *model.Unit
	Guaranteed float64 // minimum damage over every move the target can make
	Score      int
	Kill       bool // Target.Wetness + Guaranteed reaches MaxWetness
}

// hunkers reports whether target is expected to hunker down instead of
// acting: it can neither shoot nor throw, or shooter is beyond its reach.
func hunkers(shooter, target *model.Unit) bool {
	if target.Cooldown > 0 && target.Bombs == 0 {
		return true
	}
	return shooter.DistanceTo(target.X, target.Y) > 2*target.Profile.OptimalRange
}

// guaranteedDamage is the worst case for shooter over the target's next
// move: staying put or stepping to any walkable neighbor.
func (p *Planner) guaranteedDamage(shooter, target *model.Unit) float64 {
	pos := target.Cell(p.world.Grid)
	hunkered := hunkers(shooter, target)
	least := p.DamageAt(shooter, pos.X, pos.Y, hunkered)
	for _, c := range pos.Neighbors {
		least = min(least, p.DamageAt(shooter, c.X, c.Y, hunkered))
	}
	return least
}

// ChooseShootTarget picks the opponent within twice the optimal range that
// maximizes guaranteed damage plus existing wetness, with bonuses for a kill
// or for pushing the target past half wetness. Ties go to the nearer target.
// The choice is recorded as shooter.ShootTarget.
func (p *Planner) ChooseShootTarget(shooter *model.Unit, roster *model.Roster) (Shot, bool) {
	shooter.ShootTarget = model.NoTarget
	if !shooter.ReadyToShoot() {
		return Shot{}, false
	}

	var best Shot
	bestScore := minShotScore
	for _, enemy := range roster.Opponents(shooter.Player) {
		dist := shooter.DistanceTo(enemy.X, enemy.Y)
		if dist > 2*shooter.Profile.OptimalRange {
			continue
		}

		dmg := p.guaranteedDamage(shooter, enemy)
		after := float64(enemy.Wetness) + dmg
		score := int(after)
		if after >= model.MaxWetness {
			score += killBonus
		}
		if enemy.Wetness < model.MaxWetness/2 && after >= model.MaxWetness/2 {
			score += halfwayBonus
		}
		slog.Debug("shot evaluated", "unit", shooter.ID, "target", enemy.ID, "guaranteed", dmg, "score", score)

		switch {
		case score > bestScore:
		case score == bestScore && best.Target != nil &&
			dist < shooter.DistanceTo(best.Target.X, best.Target.Y):
		default:
			continue
		}
		bestScore = score
		best = Shot{Target: enemy, Guaranteed: dmg, Score: score, Kill: after >= model.MaxWetness}
	}

	if best.Target == nil {
		return Shot{}, false
	}
	shooter.ShootTarget = best.Target.ID
	return best, true
}
