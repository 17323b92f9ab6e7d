package engine

import (
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	orc := dungeon.Orc.Spawn(domain.Position{X: 6, Y: 4})
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10, orc), nil)

	snap := BuildSnapshot(s, 0)

	assert.Equal(t, "UPDATE", snap.Type)
	assert.Equal(t, "PLAYING", snap.State)
	assert.Equal(t, 0, snap.Turn)
	require.NotNil(t, snap.Grid)
	assert.Equal(t, 10, snap.Grid.Width)
	assert.Len(t, snap.Map, s.World().ExploredCount())
	assert.Empty(t, snap.Logs)
	assert.Equal(t, s.Player().ID.String(), snap.MyEntityID)

	require.Len(t, snap.Entities, 2)
	assert.Equal(t, "PLAYER", snap.Entities[0].Type)
	assert.Equal(t, "@", snap.Entities[0].Render.Symbol)
	assert.Equal(t, "MONSTER", snap.Entities[1].Type)
	require.NotNil(t, snap.Entities[1].Stats)
	assert.Equal(t, 10, snap.Entities[1].Stats.HP)

	require.NotNil(t, snap.Player)
	assert.Equal(t, 30, snap.Player.Stats.HP)
	assert.Equal(t, domain.DefaultInventorySlots, snap.Player.Inventory.MaxSlots)
	assert.Empty(t, snap.Player.Inventory.Items)
}

func TestBuildSnapshot_LogsSinceSeq(t *testing.T) {
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10), nil)
	s.Submit(domain.SimpleIntent(domain.ActionInit))

	snap := BuildSnapshot(s, 0)
	require.Len(t, snap.Logs, 1)
	assert.Equal(t, "1", snap.Logs[0].ID)
	assert.Equal(t, "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings.", snap.Logs[0].Text)
	assert.Equal(t, 1, snap.LogSeq)

	again := BuildSnapshot(s, snap.LogSeq)
	assert.Empty(t, again.Logs)
	assert.Equal(t, 1, again.LogSeq)
}

func TestBuildSnapshot_HidesUnseenEntities(t *testing.T) {
	// Сплошная стена по x=10 делит комнату пополам, орк на другой стороне.
	level := oneRoomLevel(20)
	for y := 1; y < 19; y++ {
		level.World.Map[y][10] = domain.NewTile(true)
	}
	level.Spawn = domain.Position{X: 3, Y: 3}
	orc := dungeon.Orc.Spawn(domain.Position{X: 15, Y: 15})
	level.Entities = []*domain.Entity{orc}

	s := NewSessionFromLevel(testConfig(), level, nil)
	snap := BuildSnapshot(s, 0)

	require.Len(t, snap.Entities, 1)
	assert.Equal(t, "PLAYER", snap.Entities[0].Type)
	for _, tile := range snap.Map {
		assert.LessOrEqual(t, tile.X, 10, "nothing behind the wall is explored")
	}
}

func TestTileViewFor(t *testing.T) {
	tests := []struct {
		name      string
		isWall    bool
		isVisible bool
		symbol    string
	}{
		{"lit wall", true, true, "#"},
		{"remembered wall", true, false, "#"},
		{"lit floor", false, true, "."},
		{"remembered floor", false, false, "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := TileViewFor(tt.isWall, tt.isVisible, 2, 3)
			assert.Equal(t, tt.symbol, v.Symbol)
			assert.Equal(t, tt.isWall, v.IsWall)
			assert.Equal(t, tt.isVisible, v.IsVisible)
			assert.Equal(t, 2, v.X)
			assert.Equal(t, 3, v.Y)
		})
	}

	lit, dark := TileViewFor(false, true, 0, 0), TileViewFor(false, false, 0, 0)
	assert.NotEqual(t, lit.Color, dark.Color)
}
