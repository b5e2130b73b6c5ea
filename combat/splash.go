package combat

import (
	"log/slog"
	"math"

	"github.com/nstehr/soakbot/model"
)

// Explosion is the predicted outcome of a bomb landing on Target.
type Explosion struct {
	Target *model.Cell
	Hit    []*model.Unit // every active unit inside the footprint
	Killed []*model.Unit // opponents the splash would eliminate
	Damage int           // signed raw damage: +30 per opponent, -30 per teammate
	Score  float64       // Damage discounted by escape chances plus wander-in bonus
}

// SplashDamage computes the raw outcome of thrower's bomb landing on target.
func (p *Planner) SplashDamage(thrower *model.Unit, target *model.Cell, roster *model.Roster) Explosion {
	ex := Explosion{Target: target}
	for _, u := range roster.Units() {
		if !u.Active || model.Chebyshev(u.X, u.Y, target.X, target.Y) > 1 {
			continue
		}
		ex.Hit = append(ex.Hit, u)
		if u.Player == thrower.Player {
			ex.Damage -= SplashDamage
			continue
		}
		ex.Damage += SplashDamage
		if u.Wetness+SplashDamage >= model.MaxWetness {
			ex.Killed = append(ex.Killed, u)
		}
	}
	return ex
}

// score weighs an explosion by how likely each hit opponent is to stay put,
// and adds a small expectation for opponents one step outside the footprint.
func (p *Planner) score(thrower *model.Unit, ex *Explosion, roster *model.Roster) float64 {
	var total float64
	for _, u := range ex.Hit {
		if u.Player == thrower.Player {
			total -= SplashDamage
			continue
		}
		total += SplashDamage * escapeDiscount(p.escapes(u, ex.Target))
	}
	for _, u := range roster.Opponents(thrower.Player) {
		if model.Chebyshev(u.X, u.Y, ex.Target.X, ex.Target.Y) == 2 {
			total += SplashDamage * wanderChance
		}
	}
	return total
}

// escapes counts the cells a unit could step to that leave the footprint.
func (p *Planner) escapes(u *model.Unit, target *model.Cell) int {
	n := 0
	for _, c := range u.Cell(p.world.Grid).Neighbors {
		if c.BombDistance(target) > 1 {
			n++
		}
	}
	return n
}

func escapeDiscount(escapes int) float64 {
	if escapes == 0 {
		return 1
	}
	return escapeFactor / float64(escapes)
}

// ChooseBombTarget scans every landing cell in range and returns the best
// explosion if it scores strictly above threshold. The chosen cell, or nil,
// is recorded as the thrower's BombTarget.
func (p *Planner) ChooseBombTarget(thrower *model.Unit, roster *model.Roster, threshold float64) (Explosion, bool) {
	thrower.BombTarget = nil
	if thrower.Bombs <= 0 || math.IsInf(threshold, 1) {
		return Explosion{}, false
	}

	var best Explosion
	found := false
	bestScore := threshold
	for dx := -BombRange; dx <= BombRange; dx++ {
		span := BombRange - absInt(dx)
		for dy := -span; dy <= span; dy++ {
			target := p.world.Grid.At(thrower.X+dx, thrower.Y+dy)
			if target == nil {
				continue
			}
			ex := p.SplashDamage(thrower, target, roster)
			ex.Score = p.score(thrower, &ex, roster)
			if ex.Score > bestScore {
				best, bestScore, found = ex, ex.Score, true
			}
		}
	}
	if !found {
		return Explosion{}, false
	}

	thrower.BombTarget = best.Target
	slog.Debug("bomb target chosen",
		"unit", thrower.ID,
		"target", best.Target.String(),
		"score", best.Score,
		"damage", best.Damage,
		"kills", len(best.Killed),
	)
	return best, true
}

// IsLegalThrow reports whether a bomb thrown from pos at target is in range
// and cannot splash the thrower. A 2-cell diagonal throw is rejected because
// the footprint corner reaches the thrower.
func IsLegalThrow(pos, target *model.Cell) bool {
	if pos == nil || target == nil {
		return false
	}
	d := pos.Distance(target)
	if d > BombRange || d <= 1 {
		return false
	}
	return d != 2 || absInt(pos.X-target.X) != 1
}

// NearestThrowPosition searches outward from the unit's cell along walkable
// cells, at most maxDepth steps, for the closest cell from which target can
// be legally bombed. Returns nil when none is found.
func (p *Planner) NearestThrowPosition(u *model.Unit, target *model.Cell, maxDepth int) *model.Cell {
	start := u.Cell(p.world.Grid)
	if !start.Walkable() || target == nil {
		return nil
	}
	depth := map[*model.Cell]int{start: 0}
	queue := []*model.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if IsLegalThrow(cur, target) {
			return cur
		}
		if depth[cur] == maxDepth {
			continue
		}
		for _, n := range cur.Neighbors {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
