package model

import "math"

// Unreachable is the distance reported for pairs with no walkable path.
// It compares greater than any real distance.
const Unreachable = math.MaxInt32

// PathTable holds all-pairs walking distances between walkable cells.
// Rows exist only for walkable cells; -1 marks an unreachable destination.
type PathTable struct {
	grid *Grid
	rows [][]int32
}

// BuildPathTable runs one breadth-first search from every walkable cell.
func BuildPathTable(g *Grid) *PathTable {
	pt := &PathTable{grid: g, rows: make([][]int32, len(g.cells))}
	queue := make([]*Cell, 0, len(g.cells))
	for _, start := range g.cells {
		if !start.Walkable() {
			continue
		}
		row := make([]int32, len(g.cells))
		for i := range row {
			row[i] = -1
		}
		row[start.index] = 0

		queue = append(queue[:0], start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range cur.Neighbors {
				if row[n.index] >= 0 {
					continue
				}
				row[n.index] = row[cur.index] + 1
				queue = append(queue, n)
			}
		}
		pt.rows[start.index] = row
	}
	return pt
}

// Distance returns the walking distance between two cells. ok is false when
// either cell is not walkable or no path connects them.
func (pt *PathTable) Distance(from, to *Cell) (int, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	row := pt.rows[from.index]
	if row == nil {
		return 0, false
	}
	d := row[to.index]
	if d < 0 {
		return 0, false
	}
	return int(d), true
}

// DistanceOr returns the walking distance, or Unreachable when there is none.
func (pt *PathTable) DistanceOr(from, to *Cell) int {
	d, ok := pt.Distance(from, to)
	if !ok {
		return Unreachable
	}
	return d
}

// Reachable returns every walkable cell reachable from c with its distance.
func (pt *PathTable) Reachable(c *Cell) map[*Cell]int {
	row := pt.rows[c.index]
	if row == nil {
		return nil
	}
	out := make(map[*Cell]int)
	for i, d := range row {
		if d >= 0 {
			out[pt.grid.cells[i]] = int(d)
		}
	}
	return out
}
