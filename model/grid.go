package model

import "fmt"

// Cell is one square of the static map. Neighbors and Covers are filled in
// once by NewGrid and never change afterwards.
type Cell struct {
	X, Y    int
	Terrain TerrainType

	// Neighbors are the orthogonally adjacent walkable cells of a walkable cell.
	Neighbors []*Cell
	// Covers are the orthogonally adjacent blocking cells.
	Covers []*Cell

	index int
}

func (c *Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Walkable reports whether units can stand on the cell.
func (c *Cell) Walkable() bool { return c.Terrain.Walkable() }

// Distance is the Manhattan distance, used for weapon range and adjacency.
func (c *Cell) Distance(o *Cell) int { return Manhattan(c.X, c.Y, o.X, o.Y) }

// BombDistance is the Chebyshev distance, matching the square splash footprint.
func (c *Cell) BombDistance(o *Cell) int { return Chebyshev(c.X, c.Y, o.X, o.Y) }

// Grid is the immutable map. Cells are stored row-major: cells[y*Width+x].
type Grid struct {
	Width  int
	Height int
	cells  []*Cell
}

// orthogonal is the fixed neighbor visiting order: left, right, up, down.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGrid builds the map from row-major terrain and precomputes adjacency.
func NewGrid(width, height int, terrain []TerrainType) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if len(terrain) != width*height {
		return nil, fmt.Errorf("terrain has %d cells, want %d", len(terrain), width*height)
	}

	g := &Grid{Width: width, Height: height, cells: make([]*Cell, width*height)}
	for i, t := range terrain {
		g.cells[i] = &Cell{X: i % width, Y: i / width, Terrain: t, index: i}
	}

	for _, c := range g.cells {
		for _, d := range orthogonal {
			n := g.At(c.X+d[0], c.Y+d[1])
			if n == nil {
				continue
			}
			if c.Walkable() && n.Walkable() {
				c.Neighbors = append(c.Neighbors, n)
			}
			if n.Terrain.Blocking() {
				c.Covers = append(c.Covers, n)
			}
		}
	}
	return g, nil
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.Width+x]
}

// InBounds reports whether (x, y) lies on the map.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Clip clamps coordinates onto the map.
func (g *Grid) Clip(x, y int) (int, int) {
	return clampInt(x, 0, g.Width-1), clampInt(y, 0, g.Height-1)
}

// ClipAt returns the cell at the clipped coordinates. It never returns nil.
func (g *Grid) ClipAt(x, y int) *Cell {
	return g.At(g.Clip(x, y))
}

// Cells returns every cell in row-major order. The slice must not be modified.
func (g *Grid) Cells() []*Cell { return g.cells }

// Center is the cell at (Width/2, Height/2).
func (g *Grid) Center() *Cell { return g.At(g.Width/2, g.Height/2) }

// NearestWalkable returns start if it is walkable, otherwise the first
// walkable cell found by a 4-directional search that crosses obstacles.
// Returns nil for a map with no walkable cell.
func (g *Grid) NearestWalkable(start *Cell) *Cell {
	if start.Walkable() {
		return start
	}
	visited := make([]bool, len(g.cells))
	visited[start.index] = true
	queue := []*Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range orthogonal {
			n := g.At(cur.X+d[0], cur.Y+d[1])
			if n == nil || visited[n.index] {
				continue
			}
			if n.Walkable() {
				return n
			}
			visited[n.index] = true
			queue = append(queue, n)
		}
	}
	return nil
}

// Manhattan is |dx| + |dy|.
func Manhattan(x1, y1, x2, y2 int) int {
	return absInt(x1-x2) + absInt(y1-y2)
}

// Chebyshev is max(|dx|, |dy|).
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(absInt(x1-x2), absInt(y1-y2))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
