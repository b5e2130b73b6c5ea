package agent

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/nstehr/soakbot/model"
)

// EventKind identifies a notable change of the roster between two turns.
type EventKind string

const (
	EventUnitEliminated      EventKind = "unit_eliminated"
	EventAdvantageShift      EventKind = "advantage_shift"
	EventEnemyBombsExhausted EventKind = "enemy_bombs_exhausted"
)

// Event is detected by diffing consecutive roster snapshots.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// rosterSnapshot captures the diffable fields of one turn.
type rosterSnapshot struct {
	active     map[int]int // id → player for active units
	mine       int
	enemies    int
	enemyBombs int
}

func takeSnapshot(r *model.Roster, playerID int) rosterSnapshot {
	snap := rosterSnapshot{active: make(map[int]int)}
	for _, u := range r.Units() {
		if !u.Active {
			continue
		}
		snap.active[u.ID] = u.Player
		if u.Player == playerID {
			snap.mine++
			continue
		}
		snap.enemies++
		snap.enemyBombs += u.Bombs
	}
	return snap
}

// standing is "ahead", "even" or "behind" by unit count.
func (s rosterSnapshot) standing() string {
	switch {
	case s.mine > s.enemies:
		return "ahead"
	case s.mine < s.enemies:
		return "behind"
	default:
		return "even"
	}
}

// detectEvents compares the current snapshot against the previous one.
// Returns nil if prev is nil (first turn).
func detectEvents(turn, playerID int, cur rosterSnapshot, prev *rosterSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event

	var gone []int
	for id := range prev.active {
		if _, ok := cur.active[id]; !ok {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		side := "enemy"
		if prev.active[id] == playerID {
			side = "own"
		}
		events = append(events, Event{
			Kind:   EventUnitEliminated,
			Turn:   turn,
			Detail: fmt.Sprintf("%s unit %d eliminated", side, id),
		})
	}

	if prev.standing() != cur.standing() {
		events = append(events, Event{
			Kind:   EventAdvantageShift,
			Turn:   turn,
			Detail: fmt.Sprintf("%s → %s (%dv%d)", prev.standing(), cur.standing(), cur.mine, cur.enemies),
		})
	}

	if prev.enemyBombs > 0 && cur.enemyBombs == 0 {
		events = append(events, Event{
			Kind:   EventEnemyBombsExhausted,
			Turn:   turn,
			Detail: "enemy has no splash bombs left",
		})
	}

	return events
}

func logEvents(events []Event) {
	for _, e := range events {
		slog.Info("roster event", "kind", e.Kind, "turn", e.Turn, "detail", e.Detail)
	}
}
