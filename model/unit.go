package model

import "fmt"

const (
	// MaxWetness is the accumulated damage at which a unit leaves the game.
	MaxWetness = 100
	// NoTarget marks an empty shoot intent.
	NoTarget = -1
)

// Profile is the combat profile sent once at game start.
type Profile struct {
	ShootCooldown int // turns between shots
	OptimalRange  int // Manhattan range for full damage
	SoakingPower  int // damage within optimal range
	SplashBombs   int // bombs carried at game start
}

// Unit is one combatant. Profile and identity never change; the turn state
// is overwritten every turn; the intent fields are recomputed by planners
// and cleared on every refresh.
type Unit struct {
	ID      int
	Player  int
	Profile Profile

	X        int
	Y        int
	Cooldown int
	Bombs    int
	Wetness  int
	Active   bool

	Goal        *Cell
	ShootTarget int // unit ID, NoTarget when none
	BombTarget  *Cell
}

// NewUnit creates an active unit with a full bomb load.
func NewUnit(id, player int, p Profile) *Unit {
	return &Unit{
		ID:          id,
		Player:      player,
		Profile:     p,
		Bombs:       p.SplashBombs,
		Active:      true,
		ShootTarget: NoTarget,
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("unit %d (p%d, %d wet) at (%d,%d)", u.ID, u.Player, u.Wetness, u.X, u.Y)
}

// TurnState is the per-turn part of the referee feed for one unit.
type TurnState struct {
	ID       int
	X        int
	Y        int
	Cooldown int
	Bombs    int
	Wetness  int
}

// apply overwrites the turn state and drops all planning intent. Wetness
// never decreases; the returned flag reports a feed that tried to lower it.
func (u *Unit) apply(s TurnState) (regressed bool) {
	u.X, u.Y = s.X, s.Y
	u.Cooldown = s.Cooldown
	u.Bombs = s.Bombs
	w := clampInt(s.Wetness, 0, MaxWetness)
	if w < u.Wetness {
		regressed = true
		w = u.Wetness
	}
	u.Wetness = w
	u.ClearIntent()
	return regressed
}

// ClearIntent drops goal, shoot target and bomb target.
func (u *Unit) ClearIntent() {
	u.Goal = nil
	u.ShootTarget = NoTarget
	u.BombTarget = nil
}

// Soak adds damage and reports whether this call eliminated the unit.
func (u *Unit) Soak(damage int) bool {
	if damage <= 0 {
		return false
	}
	u.Wetness = min(MaxWetness, u.Wetness+damage)
	if u.Active && u.Wetness >= MaxWetness {
		u.Active = false
		return true
	}
	return false
}

// eliminate marks a unit removed by the referee. Returns false if it was
// already inactive.
func (u *Unit) eliminate() bool {
	if !u.Active {
		return false
	}
	u.Active = false
	u.Wetness = MaxWetness
	u.ClearIntent()
	return true
}

// Cell returns the grid cell under the unit, clipped onto the map.
func (u *Unit) Cell(g *Grid) *Cell { return g.ClipAt(u.X, u.Y) }

// DistanceTo is the Manhattan distance from the unit to (x, y).
func (u *Unit) DistanceTo(x, y int) int { return Manhattan(u.X, u.Y, x, y) }

// ReadyToShoot reports whether the unit can fire this turn.
func (u *Unit) ReadyToShoot() bool { return u.Cooldown == 0 }

// clone is a deep copy. Cells are immutable and shared; ShootTarget is an ID
// so it resolves inside whichever roster the copy lives in.
func (u *Unit) clone() *Unit {
	c := *u
	return &c
}
