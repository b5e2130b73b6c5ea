// Package tactics decides where each controlled unit moves this turn.
package tactics

import (
	"log/slog"
	"math"
	"slices"

	"github.com/nstehr/soakbot/combat"
	"github.com/nstehr/soakbot/model"
)

// Planner scores destinations for the controlled player's units.
type Planner struct {
	world   *model.World
	combat  *combat.Planner
	weights Weights
}

func NewPlanner(w *model.World, cp *combat.Planner, weights Weights) *Planner {
	weights.Validate()
	return &Planner{world: w, combat: cp, weights: weights}
}

// Move is the chosen destination of one unit.
type Move struct {
	UnitID int
	From   *model.Cell
	To     *model.Cell
	Score  float64
	Terms  Breakdown
}

// Plan is the outcome of one planning cycle.
type Plan struct {
	Turn      int
	Moves     []Move // in processing order, most soaked unit first
	Goals     map[int]*model.Cell
	Focus     *model.Unit // the team focus target inside Snapshot, nil when no enemy is left
	Advantage float64
	// Snapshot is the private roster used for planning: enemy intent is
	// recorded and own units stand on their chosen destinations.
	Snapshot *model.Roster
}

// PlanTurn predicts enemy intent, assigns strategic goals and picks a
// destination for every active own unit. The given roster is not modified.
func (p *Planner) PlanTurn(roster *model.Roster, turn int) Plan {
	snap := roster.Snapshot()
	me := p.world.PlayerID
	mine := snap.Active(me)
	enemies := snap.Opponents(me)

	for _, e := range enemies {
		p.combat.ChooseBombTarget(e, snap, p.weights.EnemyBombFloor)
	}
	for _, e := range enemies {
		p.combat.ChooseShootTarget(e, snap)
	}
	for _, e := range enemies {
		if e.ShootTarget != model.NoTarget || e.BombTarget != nil {
			slog.Debug("enemy intent", "unit", e.ID, "shoot", e.ShootTarget, "bomb", cellString(e.BombTarget))
		}
	}

	tc := &turnContext{
		turn:      turn,
		advantage: Advantage(len(mine), len(enemies)),
		focus:     FocusTarget(p.world.Grid, enemies),
		enemies:   enemies,
		snapshot:  snap,
		claimed:   make(map[*model.Cell]bool, len(mine)),
	}
	goals := StrategicGoals(p.world.Grid, mine, enemies)

	order := slices.Clone(mine)
	slices.SortStableFunc(order, func(a, b *model.Unit) int { return b.Wetness - a.Wetness })

	plan := Plan{
		Turn:      turn,
		Goals:     goals,
		Focus:     tc.focus,
		Advantage: tc.advantage,
		Snapshot:  snap,
	}
	for _, u := range order {
		u.Goal = goals[u.ID]
		m := p.bestMove(u, tc)
		tc.claimed[m.To] = true
		u.X, u.Y = m.To.X, m.To.Y
		plan.Moves = append(plan.Moves, m)
	}
	return plan
}

// bestMove picks the highest scoring cell among staying put and stepping to
// a walkable neighbor. Holding wins ties.
func (p *Planner) bestMove(u *model.Unit, tc *turnContext) Move {
	from := u.Cell(p.world.Grid)
	best := Move{UnitID: u.ID, From: from, To: from, Score: math.Inf(-1)}
	candidates := append([]*model.Cell{from}, from.Neighbors...)
	for _, c := range candidates {
		score, terms := p.evaluate(u, c, tc)
		slog.Debug("move evaluated",
			"unit", u.ID,
			"cell", c.String(),
			"safety", terms.Safety,
			"splash", terms.Splash,
			"territory", terms.Territory,
			"strategic", terms.Strategic,
			"focus", terms.Focus,
		)
		if score > best.Score {
			best.To, best.Score, best.Terms = c, score, terms
		}
	}
	if e, d := model.Closest(best.To, tc.enemies); e != nil {
		slog.Debug("move chosen", "unit", u.ID, "to", best.To.String(), "score", best.Score, "nearest_enemy", e.ID, "weighted_distance", d)
	}
	return best
}

func cellString(c *model.Cell) string {
	if c == nil {
		return "none"
	}
	return c.String()
}
