package ipc

// UnitProfile is the static description of one unit, sent once.
type UnitProfile struct {
	ID            int
	Player        int
	ShootCooldown int
	OptimalRange  int
	SoakingPower  int
	SplashBombs   int
}

// InitMessage is the game-start block.
type InitMessage struct {
	PlayerID int
	Units    []UnitProfile
	Width    int
	Height   int
	Terrain  []int // row-major referee codes, Terrain[y*Width+x]
}

// UnitState is one line of the per-turn feed.
type UnitState struct {
	ID       int
	X        int
	Y        int
	Cooldown int
	Bombs    int
	Wetness  int
}

// TurnMessage is the per-turn feed: every unit still in the game, then the
// number of those that belong to us.
type TurnMessage struct {
	Units      []UnitState
	OwnedCount int
}
