package model

// World bundles the static map with its precomputed tables. It is built once
// at game start and shared read-only by every planner.
type World struct {
	Grid     *Grid
	Paths    *PathTable
	Cover    *CoverField
	PlayerID int
}

// NewWorld precomputes path distances and cover for the grid.
func NewWorld(g *Grid, playerID int) *World {
	return &World{
		Grid:     g,
		Paths:    BuildPathTable(g),
		Cover:    BuildCoverField(g),
		PlayerID: playerID,
	}
}

// Mine reports whether the unit belongs to the controlled player.
func (w *World) Mine(u *Unit) bool { return u.Player == w.PlayerID }
