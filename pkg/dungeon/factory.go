package dungeon

import (
	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
)

// Стартовые характеристики героя
const (
	PlayerHP      = 30
	PlayerDefense = 2
	PlayerPower   = 5
)

// CreatePlayer создает игрока с пустым рюкзаком на заданной позиции.
// slots <= 0 означает размер рюкзака по умолчанию.
func CreatePlayer(pos domain.Position, slots int) *domain.Entity {
	return &domain.Entity{
		Kind:   enums.EntityKindPlayer,
		Name:   "player",
		Pos:    pos,
		Blocks: true,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(types.ColorWhite, '@')},
		Fighter: &domain.FighterComponent{
			MaxHP:   PlayerHP,
			HP:      PlayerHP,
			Defense: PlayerDefense,
			Power:   PlayerPower,
			OnDeath: enums.DeathPlayer,
		},
		Inventory: domain.NewInventory(slots),
	}
}
