package domain

import (
	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
)

// DefaultInventorySlots соответствует буквенному меню a..z.
const DefaultInventorySlots = 26

type Entity struct {
	// Идентификация
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`
	Name string           `json:"name"`

	Pos Position `json:"pos"`

	// Blocks - занимает клетку для передвижения.
	Blocks bool `json:"blocks"`

	// Компоненты (nil - свойство отсутствует)
	Render    *RenderComponent    `json:"render,omitempty"`
	Fighter   *FighterComponent   `json:"fighter,omitempty"`
	AI        *AIComponent        `json:"ai,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
}

// Glyph возвращает символ сущности или пробел, если рендер не задан.
func (e *Entity) Glyph() types.Glyph {
	if e.Render == nil {
		return types.MakeGlyph(types.ColorWhite, ' ')
	}
	return e.Render.Glyph
}

// CanFight: есть живой боевой компонент.
func (e *Entity) CanFight() bool {
	return e.Fighter != nil && !e.Fighter.Dead
}

func (e *Entity) IsAt(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}
