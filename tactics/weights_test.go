package tactics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsAreValid(t *testing.T) {
	w := DefaultWeights()
	w.Validate()
	assert.Equal(t, DefaultWeights(), w)
}

func TestValidateClamps(t *testing.T) {
	w := DefaultWeights()
	w.DamageTaken = 5
	w.ContestDistance = 0
	w.BombThreshold = 500
	w.Validate()
	assert.Zero(t, w.DamageTaken)
	assert.Equal(t, 1, w.ContestDistance)
	assert.Equal(t, 90.0, w.BombThreshold)
}

func TestLoadWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"focus_target": 40, "contest_distance": 99}`), 0o600))

	w, err := LoadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, w.FocusTarget)
	assert.Equal(t, 20, w.ContestDistance)
	assert.Equal(t, DefaultWeights().StrategicGoal, w.StrategicGoal)
}

func TestLoadWeightsErrors(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	w, err := LoadWeights(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultWeights(), w)
}
