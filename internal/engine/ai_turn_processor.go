package engine

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// processAITurns даёт ход всем монстрам. Проход обрывается сразу после
// действия, которое убило игрока.
func (s *Session) processAITurns() {
	systems.RunMonsterTurns(s.ctx, func() bool {
		return s.state != domain.StatePlaying
	})
}
