package model

// CoverField precomputes, for every cell a unit could stand on, how much of
// a shot fired from each other cell is absorbed by the cover next to it.
// fields[sheltered.index][shooterY*width+shooterX] is a value in [0, 1].
type CoverField struct {
	width, height int
	fields        [][]float64
}

// ringKeep is the value a cell next to an obstacle must already hold to
// survive the no-cover reset around that obstacle.
const ringKeep = 1.0

// BuildCoverField computes the reduction field for every cell of the grid.
func BuildCoverField(g *Grid) *CoverField {
	cf := &CoverField{width: g.Width, height: g.Height, fields: make([][]float64, len(g.cells))}
	for _, c := range g.cells {
		cf.fields[c.index] = shadowField(g, c)
	}
	return cf
}

// shadowField casts a shadow away from sheltered across each adjacent
// obstacle. A shooter standing in the shadow has its shot reduced.
func shadowField(g *Grid, sheltered *Cell) []float64 {
	field := make([]float64, g.Width*g.Height)
	for _, cover := range sheltered.Covers {
		reduction := cover.Terrain.Reduction()
		if reduction == 0 {
			continue
		}

		dirX := cover.X - sheltered.X
		dirY := cover.Y - sheltered.Y
		spanRow := dirX == 0 // obstacle above or below: shadow spans whole rows
		spanCol := dirY == 0 // obstacle left or right: shadow spans whole columns

		for x, y := cover.X+dirX, cover.Y+dirY; g.InBounds(x, y); x, y = x+dirX, y+dirY {
			raise(field, g.Width, x, y, reduction)
			if spanRow {
				for fx := 0; fx < g.Width; fx++ {
					raise(field, g.Width, fx, y, reduction)
				}
			}
			if spanCol {
				for fy := 0; fy < g.Height; fy++ {
					raise(field, g.Width, x, fy, reduction)
				}
			}
		}

		// Shooters hugging the obstacle fire around it.
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				x, y := cover.X+dx, cover.Y+dy
				if !g.InBounds(x, y) {
					continue
				}
				if i := y*g.Width + x; field[i] < ringKeep {
					field[i] = 0
				}
			}
		}
	}
	return field
}

func raise(field []float64, width, x, y int, v float64) {
	if i := y*width + x; v > field[i] {
		field[i] = v
	}
}

// Reduction returns the fraction of damage removed when a shooter at
// (shooterX, shooterY) fires at a unit standing on sheltered. Out of bounds
// shooters get no reduction.
func (cf *CoverField) Reduction(sheltered *Cell, shooterX, shooterY int) float64 {
	if sheltered == nil || shooterX < 0 || shooterX >= cf.width || shooterY < 0 || shooterY >= cf.height {
		return 0
	}
	return cf.fields[sheltered.index][shooterY*cf.width+shooterX]
}

// Field returns a copy of the reduction matrix for sheltered, indexed [x][y].
func (cf *CoverField) Field(sheltered *Cell) [][]float64 {
	src := cf.fields[sheltered.index]
	out := make([][]float64, cf.width)
	for x := range out {
		out[x] = make([]float64, cf.height)
		for y := range out[x] {
			out[x][y] = src[y*cf.width+x]
		}
	}
	return out
}
