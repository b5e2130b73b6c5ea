package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(t *testing.T) *Roster {
	t.Helper()
	r := NewRoster()
	require.NoError(t, r.Add(NewUnit(3, 1, Profile{ShootCooldown: 2, OptimalRange: 4, SoakingPower: 16, SplashBombs: 1})))
	require.NoError(t, r.Add(NewUnit(1, 0, Profile{ShootCooldown: 1, OptimalRange: 2, SoakingPower: 24, SplashBombs: 0})))
	require.NoError(t, r.Add(NewUnit(2, 0, Profile{ShootCooldown: 5, OptimalRange: 6, SoakingPower: 8, SplashBombs: 3})))
	return r
}

func TestRosterOrderAndLookup(t *testing.T) {
	r := testRoster(t)
	var ids []int
	for _, u := range r.Units() {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Error(t, r.Add(NewUnit(2, 1, Profile{})))

	u, ok := r.Get(2)
	require.True(t, ok)
	assert.Equal(t, 3, u.Bombs)
	_, ok = r.Get(42)
	assert.False(t, ok)

	assert.Len(t, r.Active(0), 2)
	assert.Len(t, r.Opponents(0), 1)
	assert.Equal(t, 1, r.ActiveCount(1))

	r.Refresh([]TurnState{{ID: 1}, {ID: 3}})
	assert.Len(t, r.Team(0), 2)
	assert.Len(t, r.Active(0), 1)
}

func TestRosterSnapshotIsIndependent(t *testing.T) {
	r := testRoster(t)
	r.Refresh([]TurnState{
		{ID: 1, X: 1, Y: 1},
		{ID: 2, X: 2, Y: 2},
		{ID: 3, X: 3, Y: 3, Wetness: 40},
	})
	orig, _ := r.Get(3)
	orig.ShootTarget = 1

	snap := r.Snapshot()
	cp, ok := snap.Get(3)
	require.True(t, ok)
	require.NotSame(t, orig, cp)
	assert.Equal(t, 1, cp.ShootTarget)

	cp.X = 9
	cp.Soak(70)
	cp.ShootTarget = NoTarget
	assert.Equal(t, 3, orig.X)
	assert.Equal(t, 40, orig.Wetness)
	assert.True(t, orig.Active)
	assert.Equal(t, 1, orig.ShootTarget)
	assert.False(t, cp.Active)
}

func TestRosterRefreshClearsIntentAndEliminatesAbsent(t *testing.T) {
	r := testRoster(t)
	r.Refresh([]TurnState{{ID: 1}, {ID: 2}, {ID: 3}})
	u, _ := r.Get(1)
	u.Goal = &Cell{}
	u.ShootTarget = 3
	u.BombTarget = &Cell{}

	res := r.Refresh([]TurnState{{ID: 1, X: 4, Y: 5, Cooldown: 1, Wetness: 30}, {ID: 3}, {ID: 99}})
	assert.Equal(t, []int{2}, res.Eliminated)
	assert.Equal(t, []int{99}, res.Unknown)
	assert.Nil(t, u.Goal)
	assert.Nil(t, u.BombTarget)
	assert.Equal(t, NoTarget, u.ShootTarget)
	assert.Equal(t, 4, u.X)
	assert.Equal(t, 30, u.Wetness)

	gone, _ := r.Get(2)
	assert.False(t, gone.Active)
	assert.Equal(t, MaxWetness, gone.Wetness)

	// Elimination happens exactly once.
	res = r.Refresh([]TurnState{{ID: 1, Wetness: 30}, {ID: 3}})
	assert.Empty(t, res.Eliminated)
}

func TestRosterWetnessIsMonotonic(t *testing.T) {
	r := testRoster(t)
	r.Refresh([]TurnState{{ID: 1, Wetness: 50}, {ID: 2}, {ID: 3}})
	res := r.Refresh([]TurnState{{ID: 1, Wetness: 20}, {ID: 2}, {ID: 3}})
	assert.Equal(t, []int{1}, res.Regressed)
	u, _ := r.Get(1)
	assert.Equal(t, 50, u.Wetness)

	res = r.Refresh([]TurnState{{ID: 1, Wetness: 130}, {ID: 2}, {ID: 3}})
	assert.Equal(t, []int{1}, res.Eliminated)
	assert.Equal(t, MaxWetness, u.Wetness)
	assert.False(t, u.Active)
}

func TestUnitSoak(t *testing.T) {
	u := NewUnit(1, 0, Profile{})
	assert.False(t, u.Soak(60))
	assert.False(t, u.Soak(0))
	assert.True(t, u.Soak(45))
	assert.Equal(t, MaxWetness, u.Wetness)
	assert.False(t, u.Soak(10), "already inactive")
}

func TestClosestWeightsWetUnits(t *testing.T) {
	g := mustGrid(t, "......")
	near := NewUnit(1, 1, Profile{})
	near.X, near.Wetness = 2, 60
	far := NewUnit(2, 1, Profile{})
	far.X = 3

	got, d := Closest(g.At(0, 0), []*Unit{near, far})
	assert.Same(t, far, got)
	assert.Equal(t, 3, d)

	got, d = Closest(g.At(0, 0), nil)
	assert.Nil(t, got)
	assert.Equal(t, Unreachable, d)
}
