package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := GridFromRows(rows...)
	require.NoError(t, err)
	return g
}

func TestNewGridRejectsBadInput(t *testing.T) {
	_, err := NewGrid(0, 3, nil)
	assert.Error(t, err)
	_, err = NewGrid(2, 2, []TerrainType{Open, Open, Open})
	assert.Error(t, err)
}

func TestGridNeighborsAndCovers(t *testing.T) {
	g := mustGrid(t,
		"...",
		".x.",
		"...",
	)

	center := g.At(1, 1)
	assert.Empty(t, center.Neighbors, "cover cells have no walkable neighbors")

	top := g.At(1, 0)
	require.Len(t, top.Neighbors, 2)
	assert.Equal(t, g.At(0, 0), top.Neighbors[0])
	assert.Equal(t, g.At(2, 0), top.Neighbors[1])
	require.Len(t, top.Covers, 1)
	assert.Equal(t, center, top.Covers[0])

	corner := g.At(0, 0)
	assert.Len(t, corner.Neighbors, 2)
	assert.Empty(t, corner.Covers, "diagonal obstacles do not count as cover")
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := mustGrid(t, "..", "..")
	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, 2))
	assert.Equal(t, g.At(1, 1), g.ClipAt(5, 9))
	assert.Equal(t, g.At(0, 0), g.ClipAt(-3, -3))
}

func TestDistances(t *testing.T) {
	g := mustGrid(t, "....", "....", "....")
	a, b := g.At(0, 0), g.At(3, 2)
	assert.Equal(t, 5, a.Distance(b))
	assert.Equal(t, 3, a.BombDistance(b))
	assert.Equal(t, 0, a.BombDistance(a))
}

func TestNearestWalkable(t *testing.T) {
	g := mustGrid(t,
		"XXXXX",
		"XXXXX",
		"XX..X",
	)
	got := g.NearestWalkable(g.At(1, 0))
	require.NotNil(t, got)
	assert.True(t, got.Walkable())
	assert.Equal(t, 3, got.Distance(g.At(1, 0)))

	open := g.At(2, 2)
	assert.Equal(t, open, g.NearestWalkable(open))

	blocked := mustGrid(t, "xX", "Xx")
	assert.Nil(t, blocked.NearestWalkable(blocked.At(0, 0)))
}
