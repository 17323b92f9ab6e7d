package engine

import (
	"rogue-engine/pkg/dungeon"
)

// populate создает игрока и регистрирует всех сущностей уровня.
// Игрок идёт первым, дальше в порядке генерации.
func (s *Session) populate(level dungeon.Level) {
	s.player = s.entities.Spawn(dungeon.CreatePlayer(level.Spawn, s.cfg.InventorySlots))

	for _, e := range level.Entities {
		s.entities.Spawn(e)
	}
}
