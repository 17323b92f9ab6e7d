package domain

import (
	"fmt"

	"rogue-engine/internal/core/types"
)

// NewInventory создаёт пустой рюкзак. slots <= 0 означает значение по умолчанию.
func NewInventory(slots int) *InventoryComponent {
	if slots <= 0 {
		slots = DefaultInventorySlots
	}
	return &InventoryComponent{Items: make([]*Entity, 0, slots), MaxSlots: slots}
}

func (inv *InventoryComponent) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.Items)
}

func (inv *InventoryComponent) IsFull() bool {
	return inv == nil || len(inv.Items) >= inv.MaxSlots
}

// AddItem кладёт предмет в конец рюкзака.
func (inv *InventoryComponent) AddItem(item *Entity) error {
	if inv.IsFull() {
		return ErrInventoryFull
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// At возвращает предмет в слоте или ErrInvalidSelection.
func (inv *InventoryComponent) At(slot int) (*Entity, error) {
	if inv == nil || slot < 0 || slot >= len(inv.Items) {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrInvalidSelection)
	}
	return inv.Items[slot], nil
}

// RemoveAt вынимает предмет из слота, сохраняя порядок остальных.
func (inv *InventoryComponent) RemoveAt(slot int) (*Entity, error) {
	item, err := inv.At(slot)
	if err != nil {
		return nil, err
	}
	inv.Items = append(inv.Items[:slot], inv.Items[slot+1:]...)
	return item, nil
}

// RemoveItem удаляет предмет по ID.
func (inv *InventoryComponent) RemoveItem(id types.EntityID) *Entity {
	if inv == nil {
		return nil
	}
	for i, item := range inv.Items {
		if item.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem ищет предмет по ID.
func (inv *InventoryComponent) FindItem(id types.EntityID) *Entity {
	if inv == nil {
		return nil
	}
	for _, item := range inv.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// SlotLetter: 0 -> 'a', 25 -> 'z'.
func SlotLetter(slot int) byte {
	return byte('a' + slot)
}
