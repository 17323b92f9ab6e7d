package domain

import (
	"errors"
	"testing"

	"rogue-engine/internal/core/types/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFighter_TakeDamageDiesOnce(t *testing.T) {
	f := &FighterComponent{MaxHP: 10, HP: 10}

	assert.False(t, f.TakeDamage(4))
	assert.Equal(t, 6, f.HP)

	assert.True(t, f.TakeDamage(8), "first lethal hit reports death")
	assert.True(t, f.Dead)

	assert.False(t, f.TakeDamage(8), "corpse cannot die twice")
	assert.Equal(t, -2, f.HP, "hp is untouched after death")
}

func TestFighter_Heal(t *testing.T) {
	tests := []struct {
		name       string
		hp         int
		amount     int
		wantHP     int
		wantHealed int
	}{
		{name: "partial", hp: 20, amount: 4, wantHP: 24, wantHealed: 4},
		{name: "clamped", hp: 28, amount: 4, wantHP: 30, wantHealed: 2},
		{name: "full", hp: 30, amount: 4, wantHP: 30, wantHealed: 0},
		{name: "negative ignored", hp: 10, amount: -5, wantHP: 10, wantHealed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FighterComponent{MaxHP: 30, HP: tt.hp}
			assert.Equal(t, tt.wantHealed, f.Heal(tt.amount))
			assert.Equal(t, tt.wantHP, f.HP)
		})
	}
}

func TestAI_ConfusionWearsOff(t *testing.T) {
	ai := &AIComponent{Kind: enums.AIBasic}
	ai.Confuse(2)

	require.Equal(t, enums.AIConfused, ai.Kind)
	assert.False(t, ai.TickConfusion())
	assert.True(t, ai.TickConfusion())
	assert.Equal(t, enums.AIBasic, ai.Kind)

	// Повторная конфузия не затирает исходную стратегию
	ai.Confuse(3)
	ai.Confuse(5)
	assert.Equal(t, enums.AIBasic, ai.Previous)
	assert.Equal(t, 5, ai.ConfusedTurns)
}

func TestInventory_Capacity(t *testing.T) {
	inv := NewInventory(0)
	require.Equal(t, DefaultInventorySlots, inv.MaxSlots)

	for i := 0; i < DefaultInventorySlots; i++ {
		require.NoError(t, inv.AddItem(&Entity{Name: "potion"}))
	}
	assert.True(t, inv.IsFull())

	err := inv.AddItem(&Entity{Name: "one too many"})
	assert.True(t, errors.Is(err, ErrInventoryFull))
	assert.Equal(t, DefaultInventorySlots, inv.Len())
}

func TestInventory_Selection(t *testing.T) {
	inv := NewInventory(3)
	require.NoError(t, inv.AddItem(&Entity{Name: "a"}))
	require.NoError(t, inv.AddItem(&Entity{Name: "b"}))

	for _, slot := range []int{-1, 2, 26} {
		_, err := inv.At(slot)
		assert.True(t, errors.Is(err, ErrInvalidSelection), "slot %d", slot)
	}

	item, err := inv.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item.Name)
	assert.Equal(t, "b", inv.Items[0].Name)
	assert.Equal(t, byte('c'), SlotLetter(2))
}
