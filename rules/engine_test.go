package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/soakbot/combat"
	"github.com/nstehr/soakbot/ipc"
	"github.com/nstehr/soakbot/model"
)

type fixture struct {
	world   *model.World
	roster  *model.Roster
	planner *combat.Planner
}

func newFixture(t *testing.T, w, h int, units ...*model.Unit) *fixture {
	t.Helper()
	g, err := model.NewGrid(w, h, make([]model.TerrainType, w*h))
	require.NoError(t, err)
	world := model.NewWorld(g, 0)
	r := model.NewRoster()
	for _, u := range units {
		require.NoError(t, r.Add(u))
	}
	return &fixture{world: world, roster: r, planner: combat.NewPlanner(world)}
}

func newUnit(id, player, x, y, rng, power, bombs int) *model.Unit {
	u := model.NewUnit(id, player, model.Profile{ShootCooldown: 1, OptimalRange: rng, SoakingPower: power, SplashBombs: bombs})
	u.X, u.Y = x, y
	return u
}

func (f *fixture) env(u *model.Unit) RuleEnv {
	return RuleEnv{Unit: u, Snapshot: f.roster, Planner: f.planner, Dest: u.Cell(f.world.Grid)}
}

func mustEngine(t *testing.T, rules []*Rule) *Engine {
	t.Helper()
	e, err := NewEngine(rules)
	require.NoError(t, err)
	return e
}

func TestCombatRulesCompile(t *testing.T) {
	e := mustEngine(t, CombatRules())
	require.Len(t, e.rules, 4)
	for i := 1; i < len(e.rules); i++ {
		assert.GreaterOrEqual(t, e.rules[i-1].Priority, e.rules[i].Priority)
	}
	assert.Equal(t, []string{CategoryCombat, CategoryChatter}, e.categories)
}

func TestNewEngineRejectsBadRules(t *testing.T) {
	_, err := NewEngine([]*Rule{{Name: "bad", ConditionSrc: `NoSuchHelper()`, Action: ActionHunker}})
	assert.Error(t, err)

	_, err = NewEngine([]*Rule{{Name: "not-bool", ConditionSrc: `BombsLeft()`, Action: ActionHunker}})
	assert.Error(t, err)

	_, err = NewEngine([]*Rule{{Name: "no-action", ConditionSrc: `true`}})
	assert.Error(t, err)
}

func TestEvaluateHunkersWithoutOptions(t *testing.T) {
	me := newUnit(1, 0, 0, 0, 2, 10, 0)
	f := newFixture(t, 5, 5, me)
	order := ipc.NewOrder(me.ID)

	env := f.env(me)
	env.Dest = nil
	fired, err := mustEngine(t, CombatRules()).Evaluate(env, order)
	require.NoError(t, err)
	assert.Equal(t, []string{"hunker-down"}, fired)
	assert.Equal(t, "1;HUNKER_DOWN", order.String())
}

func TestEvaluateShootSoaksTarget(t *testing.T) {
	me := newUnit(1, 0, 0, 0, 3, 20, 0)
	enemy := newUnit(2, 1, 2, 0, 3, 20, 0)
	f := newFixture(t, 7, 1, me, enemy)
	shot, ok := f.planner.ChooseShootTarget(me, f.roster)
	require.True(t, ok)

	env := f.env(me)
	env.Shot = &shot
	order := ipc.NewOrder(me.ID)
	fired, err := mustEngine(t, CombatRules()).Evaluate(env, order)
	require.NoError(t, err)

	assert.Equal(t, []string{"shoot-target", "announce-move"}, fired)
	assert.Equal(t, "1;SHOOT 2;MESSAGE Moving to: (0,0)", order.String())
	assert.Equal(t, 20, enemy.Wetness)
}

func TestEvaluateThrowBeatsShot(t *testing.T) {
	me := newUnit(1, 0, 0, 3, 1, 10, 1)
	a := newUnit(2, 1, 3, 3, 2, 10, 0)
	b := newUnit(3, 1, 3, 4, 2, 10, 0)
	f := newFixture(t, 7, 7, me, a, b)
	ex := f.planner.SplashDamage(me, f.world.Grid.At(3, 3), f.roster)
	require.Equal(t, 60, ex.Damage)

	env := f.env(me)
	env.Bomb = &ex
	order := ipc.NewOrder(me.ID)
	fired, err := mustEngine(t, CombatRules()).Evaluate(env, order)
	require.NoError(t, err)

	assert.Equal(t, []string{"throw-bomb", "announce-move"}, fired)
	assert.Equal(t, "1;THROW 3 3;MESSAGE Moving to: (0,3)", order.String())
	assert.Zero(t, me.Bombs)
	assert.Equal(t, 30, a.Wetness)
	assert.Equal(t, 30, b.Wetness)
}

func TestEvaluateThrowEliminatesInSnapshot(t *testing.T) {
	me := newUnit(1, 0, 0, 3, 1, 10, 1)
	a := newUnit(2, 1, 3, 3, 2, 10, 0)
	a.Wetness = 80
	f := newFixture(t, 7, 7, me, a)
	ex := f.planner.SplashDamage(me, f.world.Grid.At(3, 3), f.roster)

	env := f.env(me)
	env.Bomb = &ex
	_, err := mustEngine(t, CombatRules()).Evaluate(env, ipc.NewOrder(me.ID))
	require.NoError(t, err)
	assert.False(t, a.Active)
	assert.Empty(t, f.roster.Opponents(0))
}

func TestEvaluateIllegalThrowFallsBackToShot(t *testing.T) {
	me := newUnit(1, 0, 2, 3, 2, 10, 1)
	a := newUnit(2, 1, 3, 3, 2, 10, 0)
	f := newFixture(t, 7, 7, me, a)
	ex := f.planner.SplashDamage(me, f.world.Grid.At(3, 3), f.roster)
	shot, ok := f.planner.ChooseShootTarget(me, f.roster)
	require.True(t, ok)

	env := f.env(me)
	env.Bomb, env.Shot = &ex, &shot
	order := ipc.NewOrder(me.ID)
	fired, err := mustEngine(t, CombatRules()).Evaluate(env, order)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoot-target", "announce-move"}, fired)
	assert.Equal(t, 1, me.Bombs)
}

func TestEvaluateAnnouncesDestination(t *testing.T) {
	me := newUnit(1, 0, 0, 0, 2, 10, 0)
	f := newFixture(t, 5, 5, me)
	me.Goal = f.world.Grid.At(3, 4)
	env := f.env(me)
	env.Dest = f.world.Grid.At(0, 1)
	order := ipc.NewOrder(me.ID)
	order.Add(ipc.MoveCommand{X: 0, Y: 1})

	fired, err := mustEngine(t, CombatRules()).Evaluate(env, order)
	require.NoError(t, err)
	assert.Equal(t, []string{"hunker-down", "announce-move"}, fired)
	assert.Equal(t, "1;MOVE 0 1;HUNKER_DOWN;MESSAGE Moving to: (0,1)", order.String())
}

func TestExclusiveBlocksLowerRulesInCategory(t *testing.T) {
	var calls []string
	record := func(name string) ActionFunc {
		return func(RuleEnv, *ipc.Order) error {
			calls = append(calls, name)
			return nil
		}
	}
	e := mustEngine(t, []*Rule{
		{Name: "low", Priority: 1, Category: "a", Exclusive: true, ConditionSrc: `true`, Action: record("low")},
		{Name: "loud", Priority: 5, Category: "a", ConditionSrc: `true`, Action: record("loud")},
		{Name: "high", Priority: 3, Category: "a", Exclusive: true, ConditionSrc: `Turn >= 2`, Action: record("high")},
		{Name: "other", Priority: 2, Category: "b", Exclusive: true, ConditionSrc: `true`, Action: record("other")},
	})

	_, err := e.Evaluate(RuleEnv{Turn: 2}, ipc.NewOrder(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"loud", "high", "other"}, calls)

	calls = nil
	_, err = e.Evaluate(RuleEnv{Turn: 0}, ipc.NewOrder(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"loud", "low", "other"}, calls)
}
