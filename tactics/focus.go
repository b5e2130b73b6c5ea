package tactics

import (
	"math"

	"github.com/nstehr/soakbot/model"
)

// FocusTarget picks the enemy the whole team converges on: the one nearest
// the map center, weighted toward heavily soaked enemies and those still
// under half wetness.
func FocusTarget(g *model.Grid, enemies []*model.Unit) *model.Unit {
	center := g.Center()
	var best *model.Unit
	lowest := math.Inf(1)
	for _, e := range enemies {
		w := float64(e.Wetness)
		priority := 100 - w*1.5
		if e.Wetness < model.MaxWetness/2 {
			priority = 50 - w*1.5
		}
		score := priority * float64(e.DistanceTo(center.X, center.Y))
		if score < lowest {
			best, lowest = e, score
		}
	}
	return best
}

// Advantage is own active units per enemy active unit.
func Advantage(mine, enemies int) float64 {
	return float64(mine) / float64(max(1, enemies))
}
