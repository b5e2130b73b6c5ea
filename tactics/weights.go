package tactics

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights are the hand-tuned constants of the move heuristic. The defaults
// are what the bot plays with; a JSON file can override any subset.
type Weights struct {
	DamageTaken      float64 `json:"damage_taken"`       // per point of expected incoming damage
	DamageProbable   float64 `json:"damage_probable"`    // share of damage counted from any ready shooter
	Cover            float64 `json:"cover"`              // per point of accumulated cover reduction
	SplashCluster    float64 `json:"splash_cluster"`     // per teammate bunched within bomb reach
	SplashSpot       float64 `json:"splash_spot"`        // for standing next to a predicted landing cell
	TerritoryCapture float64 `json:"territory_capture"`  // per step inside the contest distance
	StrategicGoal    float64 `json:"strategic_goal"`     // for closing on the strategic goal
	FocusTarget      float64 `json:"focus_target"`       // for closing on the team focus target
	ContestDistance  int     `json:"contest_distance"`   // nearest-enemy distance that counts as contested
	SplashReach      int     `json:"splash_reach"`       // enemy distance at which clustering is punished
	StrategicTurns   int     `json:"strategic_turns"`    // turns over which the goal weight decays to zero
	BombThreshold    float64 `json:"bomb_threshold"`     // minimum splash score before our units throw
	EnemyBombFloor   float64 `json:"enemy_bomb_floor"`   // minimum splash score when predicting enemy throws
	ThrowSearchDepth int     `json:"throw_search_depth"` // steps searched for a legal throwing cell
}

// DefaultWeights returns the tuned baseline.
func DefaultWeights() Weights {
	return Weights{
		DamageTaken:      -2.0,
		DamageProbable:   0.5,
		Cover:            1.0,
		SplashCluster:    -30.0,
		SplashSpot:       -10.0,
		TerritoryCapture: 4.0,
		StrategicGoal:    25.0,
		FocusTarget:      15.0,
		ContestDistance:  4,
		SplashReach:      6,
		StrategicTurns:   50,
		BombThreshold:    13.5,
		EnemyBombFloor:   0,
		ThrowSearchDepth: 6,
	}
}

// Validate clamps every weight to its sane range. Penalties stay negative
// and rewards positive.
func (w *Weights) Validate() {
	w.DamageTaken = clamp(w.DamageTaken, -10, 0)
	w.DamageProbable = clamp(w.DamageProbable, 0, 1)
	w.Cover = clamp(w.Cover, 0, 10)
	w.SplashCluster = clamp(w.SplashCluster, -100, 0)
	w.SplashSpot = clamp(w.SplashSpot, -100, 0)
	w.TerritoryCapture = clamp(w.TerritoryCapture, 0, 50)
	w.StrategicGoal = clamp(w.StrategicGoal, 0, 100)
	w.FocusTarget = clamp(w.FocusTarget, 0, 100)
	w.ContestDistance = clampInt(w.ContestDistance, 1, 20)
	w.SplashReach = clampInt(w.SplashReach, 0, 20)
	w.StrategicTurns = clampInt(w.StrategicTurns, 1, 200)
	w.BombThreshold = clamp(w.BombThreshold, 0, 90)
	w.EnemyBombFloor = clamp(w.EnemyBombFloor, 0, 90)
	w.ThrowSearchDepth = clampInt(w.ThrowSearchDepth, 0, 20)
}

// LoadWeights reads a JSON file over the defaults and validates the result.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights: %w", err)
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("unmarshal weights: %w", err)
	}
	w.Validate()
	return w, nil
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
