package agent

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nstehr/soakbot/combat"
	"github.com/nstehr/soakbot/ipc"
	"github.com/nstehr/soakbot/model"
	"github.com/nstehr/soakbot/rules"
	"github.com/nstehr/soakbot/tactics"
)

// DefaultBudget is the planning time allowed per turn.
const DefaultBudget = 45 * time.Millisecond

var errNotInitialized = errors.New("turn received before init")

// Agent owns the decision making for one game session.
type Agent struct {
	Engine  *rules.Engine
	Weights tactics.Weights
	Budget  time.Duration

	world   *model.World
	roster  *model.Roster
	combat  *combat.Planner
	tactics *tactics.Planner
	turn    int // 1-based
	prev    *rosterSnapshot
	now     func() time.Time
}

func New(engine *rules.Engine, weights tactics.Weights, budget time.Duration) *Agent {
	weights.Validate()
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Agent{Engine: engine, Weights: weights, Budget: budget, turn: 1, now: time.Now}
}

// World returns the static map context, nil before init.
func (a *Agent) World() *model.World { return a.world }

// Roster returns the authoritative roster, nil before init.
func (a *Agent) Roster() *model.Roster { return a.roster }

// HandleInit builds the map tables and registers every unit.
func (a *Agent) HandleInit(msg ipc.InitMessage) error {
	terrain := make([]model.TerrainType, len(msg.Terrain))
	for i, code := range msg.Terrain {
		t, err := model.ParseTerrain(code)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		terrain[i] = t
	}
	g, err := model.NewGrid(msg.Width, msg.Height, terrain)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	roster := model.NewRoster()
	for _, p := range msg.Units {
		u := model.NewUnit(p.ID, p.Player, model.Profile{
			ShootCooldown: p.ShootCooldown,
			OptimalRange:  p.OptimalRange,
			SoakingPower:  p.SoakingPower,
			SplashBombs:   p.SplashBombs,
		})
		if err := roster.Add(u); err != nil {
			return fmt.Errorf("register unit: %w", err)
		}
	}

	start := a.now()
	a.world = model.NewWorld(g, msg.PlayerID)
	a.roster = roster
	a.combat = combat.NewPlanner(a.world)
	a.tactics = tactics.NewPlanner(a.world, a.combat, a.Weights)
	a.turn = 1
	a.prev = nil

	slog.Info("game initialized",
		"player", msg.PlayerID,
		"width", g.Width,
		"height", g.Height,
		"units", roster.Len(),
		"own", len(roster.Team(msg.PlayerID)),
		"precompute", a.now().Sub(start),
	)
	return nil
}

// HandleTurn refreshes the roster, plans every own unit's move and resolves
// its combat action. Every own unit in the feed gets exactly one order.
func (a *Agent) HandleTurn(msg ipc.TurnMessage) ([]*ipc.Order, error) {
	if a.world == nil {
		return nil, errNotInitialized
	}
	start := a.now()
	me := a.world.PlayerID

	states := make([]model.TurnState, len(msg.Units))
	for i, s := range msg.Units {
		states[i] = model.TurnState{ID: s.ID, X: s.X, Y: s.Y, Cooldown: s.Cooldown, Bombs: s.Bombs, Wetness: s.Wetness}
	}
	res := a.roster.Refresh(states)
	if len(res.Unknown) > 0 {
		slog.Warn("unknown units in feed", "turn", a.turn, "ids", res.Unknown)
	}
	if len(res.Regressed) > 0 {
		slog.Warn("reported wetness went down", "turn", a.turn, "ids", res.Regressed)
	}

	cur := takeSnapshot(a.roster, me)
	logEvents(detectEvents(a.turn, me, cur, a.prev))
	a.prev = &cur

	plan := a.tactics.PlanTurn(a.roster, a.turn)
	dest := make(map[int]*model.Cell, len(plan.Moves))
	for _, m := range plan.Moves {
		dest[m.UnitID] = m.To
	}
	slog.Debug("turn plan",
		"turn", a.turn,
		"advantage", plan.Advantage,
		"focus", focusID(plan.Focus),
		"goals", len(plan.Goals),
	)

	working := plan.Snapshot
	var orders []*ipc.Order
	for _, s := range msg.Units {
		owner, known := a.roster.Get(s.ID)
		if !known || owner.Player != me {
			continue
		}
		orders = append(orders, a.resolve(s, working, dest[s.ID]))
	}
	if len(orders) != msg.OwnedCount {
		slog.Warn("own unit count mismatch", "turn", a.turn, "reported", msg.OwnedCount, "ordered", len(orders))
	}

	elapsed := a.now().Sub(start)
	if elapsed > a.Budget {
		slog.Warn("turn over budget", "turn", a.turn, "elapsed", elapsed, "budget", a.Budget)
	} else {
		slog.Info("turn planned", "turn", a.turn, "orders", len(orders), "elapsed", elapsed)
	}
	a.turn++
	return orders, nil
}

// resolve builds one unit's order against the working snapshot. Anything
// unexpected degrades to holding position and hunkering down.
func (a *Agent) resolve(s ipc.UnitState, working *model.Roster, to *model.Cell) *ipc.Order {
	order := ipc.NewOrder(s.ID)
	u, ok := working.Get(s.ID)
	if !ok || !u.Active || to == nil {
		slog.Warn("unit not planned, holding", "unit", s.ID, "turn", a.turn)
		order.Add(ipc.MoveCommand{X: s.X, Y: s.Y})
		order.Add(ipc.HunkerCommand{})
		return order
	}
	order.Add(ipc.MoveCommand{X: to.X, Y: to.Y})

	env := rules.RuleEnv{Unit: u, Snapshot: working, Planner: a.combat, Dest: to, Turn: a.turn}
	if bomb, ok := a.combat.ChooseBombTarget(u, working, a.Weights.BombThreshold); ok {
		env.Bomb = &bomb
		if !combat.IsLegalThrow(to, bomb.Target) {
			if pos := a.combat.NearestThrowPosition(u, bomb.Target, a.Weights.ThrowSearchDepth); pos != nil {
				slog.Debug("bomb target needs repositioning", "unit", u.ID, "target", bomb.Target.String(), "throw_from", pos.String())
			}
		}
	}
	if shot, ok := a.combat.ChooseShootTarget(u, working); ok {
		env.Shot = &shot
	}

	fired, err := a.Engine.Evaluate(env, order)
	if err != nil {
		slog.Error("rule engine error", "unit", u.ID, "error", err)
	}
	if !hasCombat(order) {
		order.Add(ipc.HunkerCommand{})
	}
	slog.Debug("unit resolved", "unit", u.ID, "rules", fired, "order", order.String())
	return order
}

func hasCombat(o *ipc.Order) bool {
	return o.Has(ipc.TypeThrow) || o.Has(ipc.TypeShoot) || o.Has(ipc.TypeHunker)
}

func focusID(u *model.Unit) int {
	if u == nil {
		return model.NoTarget
	}
	return u.ID
}
