package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameWorld_AllBlocked(t *testing.T) {
	w := NewGameWorld(4, 3)

	require.Len(t, w.Map, 3)
	for y := 0; y < 3; y++ {
		require.Len(t, w.Map[y], 4)
		for x := 0; x < 4; x++ {
			assert.True(t, w.IsWall(x, y))
			assert.False(t, w.IsTransparent(x, y))
			assert.False(t, w.IsExplored(x, y))
		}
	}
}

func TestGameWorld_OutOfBounds(t *testing.T) {
	w := NewGameWorld(5, 5)
	w.Carve(0, 0)

	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}} {
		assert.True(t, w.IsWall(p.X, p.Y), "oob %v must be a wall", p)
		assert.False(t, w.IsTransparent(p.X, p.Y), "oob %v must block sight", p)
		assert.False(t, w.MarkExplored(p.X, p.Y))

		_, err := w.TileAt(p.X, p.Y)
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	}

	// Carve вне карты ничего не ломает
	w.Carve(-3, 2)
}

func TestGameWorld_CarveAndExplore(t *testing.T) {
	w := NewGameWorld(5, 5)
	w.Carve(2, 3)

	tile, err := w.TileAt(2, 3)
	require.NoError(t, err)
	assert.False(t, tile.Blocked)
	assert.False(t, tile.BlocksSight)

	assert.True(t, w.MarkExplored(2, 3), "first reveal")
	assert.False(t, w.MarkExplored(2, 3), "second reveal is a no-op")
	assert.Equal(t, 1, w.ExploredCount())
}

func TestNewTile_BlocksSightFollowsBlocked(t *testing.T) {
	assert.Equal(t, Tile{Blocked: true, BlocksSight: true}, NewTile(true))
	assert.Equal(t, Tile{}, NewTile(false))
}

func TestPosition(t *testing.T) {
	a := Position{X: 1, Y: 1}

	assert.InDelta(t, 5.0, a.DistanceTo(Position{X: 4, Y: 5}), 1e-9)
	assert.Equal(t, 25, a.DistanceSquaredTo(Position{X: 4, Y: 5}))
	assert.True(t, a.IsAdjacent(Position{X: 2, Y: 2}))
	assert.False(t, a.IsAdjacent(a))
	assert.False(t, a.IsAdjacent(Position{X: 3, Y: 1}))
	assert.Equal(t, Position{X: 0, Y: 2}, a.Shift(-1, 1))
}
