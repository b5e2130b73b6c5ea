package model

import "fmt"

// TerrainType classifies a single map cell. The numeric values match the
// terrain codes sent by the referee.
type TerrainType byte

const (
	Open      TerrainType = 0 // walkable, no protection
	LowCover  TerrainType = 1 // blocks movement, halves incoming shots
	HighCover TerrainType = 2 // blocks movement, stops three quarters of incoming shots
)

// ParseTerrain converts a referee terrain code.
func ParseTerrain(code int) (TerrainType, error) {
	if code >= int(Open) && code <= int(HighCover) {
		return TerrainType(code), nil
	}
	return Open, fmt.Errorf("unknown terrain code %d", code)
}

// Walkable reports whether units can stand on the terrain.
func (t TerrainType) Walkable() bool { return t == Open }

// Blocking reports whether the terrain is an obstacle that casts cover.
func (t TerrainType) Blocking() bool { return t == LowCover || t == HighCover }

// Reduction is the fraction of damage removed for a unit sheltered behind
// this terrain. Open ground gives nothing.
func (t TerrainType) Reduction() float64 {
	switch t {
	case LowCover:
		return 0.5
	case HighCover:
		return 0.75
	default:
		return 0
	}
}

func (t TerrainType) String() string {
	switch t {
	case Open:
		return "open"
	case LowCover:
		return "low"
	case HighCover:
		return "high"
	default:
		return fmt.Sprintf("terrain(%d)", byte(t))
	}
}
