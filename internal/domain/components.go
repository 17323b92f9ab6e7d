package domain

import (
	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---
// Компонент принадлежит сущности и не хранит обратной ссылки на неё:
// системы всегда получают владельца аргументом.

// RenderComponent - символ и цвет на карте.
type RenderComponent struct {
	Glyph types.Glyph `json:"glyph"`
}

// FighterComponent - здоровье и боевые характеристики.
// HP может уйти в минус, но Dead выставляется ровно один раз.
type FighterComponent struct {
	MaxHP   int               `json:"maxHp"`
	HP      int               `json:"hp"`
	Defense int               `json:"defense"`
	Power   int               `json:"power"`
	Dead    bool              `json:"dead"`
	OnDeath enums.DeathEffect `json:"onDeath"`
}

// AIComponent - стратегия хода. Previous хранит стратегию, к которой
// монстр вернётся после конфузии.
type AIComponent struct {
	Kind          enums.AIKind `json:"kind"`
	ConfusedTurns int          `json:"confusedTurns,omitempty"`
	Previous      enums.AIKind `json:"previous,omitempty"`
}

// ItemComponent - описание эффекта предмета.
// Amount: лечение или урон. Range: дальность поиска цели. Turns: длительность.
type ItemComponent struct {
	Effect enums.ItemEffect `json:"effect"`
	Amount int              `json:"amount,omitempty"`
	Range  int              `json:"range,omitempty"`
	Turns  int              `json:"turns,omitempty"`
}

// InventoryComponent - упорядоченный рюкзак, слоты адресуются буквами a..z.
type InventoryComponent struct {
	Items    []*Entity `json:"items"`
	MaxSlots int       `json:"maxSlots"`
}
