package model

import (
	"fmt"
	"slices"
)

// Roster indexes units by ID. Iteration order is ascending ID so that
// planning is reproducible.
type Roster struct {
	units map[int]*Unit
	ids   []int
}

func NewRoster() *Roster {
	return &Roster{units: make(map[int]*Unit)}
}

// Add registers a unit. IDs must be unique.
func (r *Roster) Add(u *Unit) error {
	if _, ok := r.units[u.ID]; ok {
		return fmt.Errorf("duplicate unit id %d", u.ID)
	}
	r.units[u.ID] = u
	i, _ := slices.BinarySearch(r.ids, u.ID)
	r.ids = slices.Insert(r.ids, i, u.ID)
	return nil
}

// Get looks up a unit by ID.
func (r *Roster) Get(id int) (*Unit, bool) {
	u, ok := r.units[id]
	return u, ok
}

// Len is the number of registered units, active or not.
func (r *Roster) Len() int { return len(r.ids) }

// Units returns every unit in ID order.
func (r *Roster) Units() []*Unit {
	out := make([]*Unit, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.units[id])
	}
	return out
}

// Active returns the active units of one player in ID order.
func (r *Roster) Active(player int) []*Unit {
	var out []*Unit
	for _, id := range r.ids {
		if u := r.units[id]; u.Active && u.Player == player {
			out = append(out, u)
		}
	}
	return out
}

// Team returns every unit of one player, active or not, in ID order.
func (r *Roster) Team(player int) []*Unit {
	var out []*Unit
	for _, id := range r.ids {
		if u := r.units[id]; u.Player == player {
			out = append(out, u)
		}
	}
	return out
}

// Opponents returns the active units not owned by player.
func (r *Roster) Opponents(player int) []*Unit {
	var out []*Unit
	for _, id := range r.ids {
		if u := r.units[id]; u.Active && u.Player != player {
			out = append(out, u)
		}
	}
	return out
}

// ActiveCount counts the active units of one player.
func (r *Roster) ActiveCount(player int) int {
	n := 0
	for _, u := range r.units {
		if u.Active && u.Player == player {
			n++
		}
	}
	return n
}

// Snapshot returns a deep copy whose units can be mutated freely.
func (r *Roster) Snapshot() *Roster {
	s := &Roster{units: make(map[int]*Unit, len(r.units)), ids: slices.Clone(r.ids)}
	for id, u := range r.units {
		s.units[id] = u.clone()
	}
	return s
}

// RefreshResult reports what a turn feed changed.
type RefreshResult struct {
	Eliminated []int // units that went inactive this turn
	Unknown    []int // ids in the feed that were never registered
	Regressed  []int // units whose reported wetness went down
}

// Refresh overwrites turn state from the referee feed. Units absent from the
// feed are eliminated. Unknown IDs are reported and skipped.
func (r *Roster) Refresh(states []TurnState) RefreshResult {
	var res RefreshResult
	seen := make(map[int]bool, len(states))
	for _, s := range states {
		u, ok := r.units[s.ID]
		if !ok {
			res.Unknown = append(res.Unknown, s.ID)
			continue
		}
		seen[s.ID] = true
		if !u.Active {
			continue
		}
		if u.apply(s) {
			res.Regressed = append(res.Regressed, s.ID)
		}
		if u.Wetness >= MaxWetness && u.eliminate() {
			res.Eliminated = append(res.Eliminated, u.ID)
		}
	}
	for _, id := range r.ids {
		if u := r.units[id]; !seen[id] && u.eliminate() {
			res.Eliminated = append(res.Eliminated, id)
		}
	}
	slices.Sort(res.Eliminated)
	return res
}

// Closest returns the unit nearest to c, counting units at half wetness or
// more as twice as far away. Returns nil and Unreachable for an empty slice.
func Closest(c *Cell, units []*Unit) (*Unit, int) {
	var best *Unit
	bestDist := Unreachable
	for _, u := range units {
		d := Manhattan(c.X, c.Y, u.X, u.Y)
		if u.Wetness >= MaxWetness/2 {
			d *= 2
		}
		if d < bestDist {
			best, bestDist = u, d
		}
	}
	return best, bestDist
}
