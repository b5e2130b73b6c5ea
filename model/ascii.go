package model

import (
	"fmt"
	"strings"
)

// GridFromRows builds a grid from ASCII rows: '.' open, 'x' low cover,
// 'X' high cover. Row 0 is the top edge (y = 0).
func GridFromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	width := len(rows[0])
	terrain := make([]TerrainType, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				terrain = append(terrain, Open)
			case 'x':
				terrain = append(terrain, LowCover)
			case 'X':
				terrain = append(terrain, HighCover)
			default:
				return nil, fmt.Errorf("unknown terrain %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return NewGrid(width, len(rows), terrain)
}

// String renders the grid in the GridFromRows format.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.At(x, y).Terrain {
			case LowCover:
				b.WriteByte('x')
			case HighCover:
				b.WriteByte('X')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
