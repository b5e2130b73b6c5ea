package tactics

import (
	"math"

	"github.com/nstehr/soakbot/model"
)

// centroid is the mean position of the units. ok is false for no units.
func centroid(units []*model.Unit) (x, y float64, ok bool) {
	if len(units) == 0 {
		return 0, 0, false
	}
	for _, u := range units {
		x += float64(u.X)
		y += float64(u.Y)
	}
	n := float64(len(units))
	return x / n, y / n, true
}

// FrontLine returns one walkable point per own unit, spread evenly along the
// line through the midpoint of the two team centroids, perpendicular to the
// axis between them.
func FrontLine(g *model.Grid, mine, enemies []*model.Unit) []*model.Cell {
	myX, myY, ok := centroid(mine)
	if !ok {
		return nil
	}
	enemyX, enemyY, ok := centroid(enemies)
	if !ok {
		enemyX, enemyY = float64(g.Width)/2, float64(g.Height)/2
	}

	midX, midY := (myX+enemyX)/2, (myY+enemyY)/2
	perpX, perpY := -(enemyY - myY), enemyX-myX
	if mag := math.Hypot(perpX, perpY); mag > 0.1 {
		perpX, perpY = perpX/mag, perpY/mag
	} else {
		perpX, perpY = 1, 0
	}

	n := len(mine)
	spread := float64(g.Width+g.Height) / float64(n+1) / 2
	points := make([]*model.Cell, 0, n)
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * spread
		x := int(math.Round(midX + offset*perpX))
		y := int(math.Round(midY + offset*perpY))
		c := g.NearestWalkable(g.ClipAt(x, y))
		if c == nil {
			continue
		}
		points = append(points, c)
	}
	return points
}

// AssignGoals binds each point, in order, to the nearest unit not yet
// assigned. Distance is Manhattan so units cut off from a point still get
// a sensible pick.
func AssignGoals(points []*model.Cell, mine []*model.Unit) map[int]*model.Cell {
	goals := make(map[int]*model.Cell, len(mine))
	free := append([]*model.Unit(nil), mine...)
	for _, p := range points {
		best := -1
		bestDist := model.Unreachable
		for i, u := range free {
			if d := u.DistanceTo(p.X, p.Y); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			break
		}
		goals[free[best].ID] = p
		free = append(free[:best], free[best+1:]...)
	}
	return goals
}

// StrategicGoals computes the front line for this turn and assigns it.
func StrategicGoals(g *model.Grid, mine, enemies []*model.Unit) map[int]*model.Cell {
	return AssignGoals(FrontLine(g, mine, enemies), mine)
}
