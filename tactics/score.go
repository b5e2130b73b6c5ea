package tactics

import (
	"math"

	"github.com/nstehr/soakbot/model"
)

// Breakdown is the per-term score of one candidate cell.
type Breakdown struct {
	Safety    float64
	Splash    float64
	Territory float64
	Strategic float64
	Focus     float64
}

// Total sums the independent terms.
func (b Breakdown) Total() float64 {
	return b.Safety + b.Splash + b.Territory + b.Strategic + b.Focus
}

// turnContext is what every candidate evaluation of one turn shares.
type turnContext struct {
	turn      int
	advantage float64
	focus     *model.Unit
	enemies   []*model.Unit
	snapshot  *model.Roster
	claimed   map[*model.Cell]bool
}

// wetnessMultiplier makes soaked units more careful.
func wetnessMultiplier(u *model.Unit) float64 {
	return 1 + float64(u.Wetness)/50
}

func (tc *turnContext) advantageMultiplier() float64 {
	return math.Max(1, tc.advantage)
}

// evaluate scores moving u to c. Claimed cells score negative infinity.
func (p *Planner) evaluate(u *model.Unit, c *model.Cell, tc *turnContext) (float64, Breakdown) {
	if tc.claimed[c] {
		return math.Inf(-1), Breakdown{}
	}
	b := Breakdown{
		Safety:    p.safety(u, c, tc),
		Splash:    p.splashRisk(u, c, tc),
		Territory: p.territory(c, tc),
		Strategic: p.strategic(u, c, tc),
		Focus:     p.focusFire(u, c, tc),
	}
	return b.Total(), b
}

// safety penalizes expected incoming damage and rewards cover at c and,
// more weakly, at the cells one and two steps beyond it.
func (p *Planner) safety(u *model.Unit, c *model.Cell, tc *turnContext) float64 {
	var potential, cover float64
	for _, e := range tc.enemies {
		cover += p.coverAround(c, e)

		base := p.combat.DamageAt(e, c.X, c.Y, false)
		if e.ShootTarget == u.ID {
			potential += base
		}
		if e.ReadyToShoot() {
			potential += p.weights.DamageProbable * base
		}
	}
	return potential*p.weights.DamageTaken*wetnessMultiplier(u) + cover*p.weights.Cover
}

func (p *Planner) coverAround(c *model.Cell, shooter *model.Unit) float64 {
	cf := p.world.Cover
	total := cf.Reduction(c, shooter.X, shooter.Y)
	for _, n := range c.Neighbors {
		total += cf.Reduction(n, shooter.X, shooter.Y) / 2
		for _, nn := range n.Neighbors {
			total += cf.Reduction(nn, shooter.X, shooter.Y) / 3
		}
	}
	return total
}

// splashRisk penalizes bunching up near a teammate while an enemy with
// bombs is in reach, and standing next to a predicted landing cell.
func (p *Planner) splashRisk(u *model.Unit, c *model.Cell, tc *turnContext) float64 {
	var cluster, spot float64
	for _, e := range tc.enemies {
		if e.Bombs > 0 && e.DistanceTo(c.X, c.Y) <= p.weights.SplashReach {
			for _, mate := range tc.snapshot.Active(u.Player) {
				if mate.ID != u.ID && model.Chebyshev(c.X, c.Y, mate.X, mate.Y) <= 2 {
					cluster += p.weights.SplashCluster
				}
			}
		}
		if e.BombTarget != nil && e.BombTarget.BombDistance(c) < 2 {
			spot += p.weights.SplashSpot
		}
	}
	return cluster + spot*wetnessMultiplier(u)
}

// territory rewards contesting ground close to the nearest enemy.
func (p *Planner) territory(c *model.Cell, tc *turnContext) float64 {
	nearest := model.Unreachable
	for _, e := range tc.enemies {
		nearest = min(nearest, e.DistanceTo(c.X, c.Y))
	}
	if nearest >= p.weights.ContestDistance {
		return 0
	}
	return float64(p.weights.ContestDistance-nearest) * p.weights.TerritoryCapture * tc.advantageMultiplier()
}

// strategic rewards walking toward the unit's goal, fading out over the
// opening turns. Unreachable distances count as farther than any path.
func (p *Planner) strategic(u *model.Unit, c *model.Cell, tc *turnContext) float64 {
	if u.Goal == nil {
		return 0
	}
	from := u.Cell(p.world.Grid)
	before := p.world.Paths.DistanceOr(from, u.Goal)
	after := p.world.Paths.DistanceOr(c, u.Goal)
	if after >= before {
		return 0
	}
	decay := math.Max(0, 1-float64(tc.turn)/float64(p.weights.StrategicTurns))
	return p.weights.StrategicGoal * decay
}

// focusFire pulls units toward the team focus target, harder for short
// ranged units and when we outnumber the enemy.
func (p *Planner) focusFire(u *model.Unit, c *model.Cell, tc *turnContext) float64 {
	if tc.focus == nil {
		return 0
	}
	before := u.DistanceTo(tc.focus.X, tc.focus.Y)
	after := model.Manhattan(c.X, c.Y, tc.focus.X, tc.focus.Y)
	if after >= before {
		return 0
	}
	rangeMultiplier := 4 / math.Max(1, float64(u.Profile.OptimalRange))
	return p.weights.FocusTarget * rangeMultiplier * tc.advantageMultiplier()
}
