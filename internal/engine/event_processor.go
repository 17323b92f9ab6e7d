package engine

import (
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"

	"github.com/sirupsen/logrus"
)

// processDeath - точка входа для смертей, о которых сообщают системы.
// Смерть игрока переводит сессию в Dead.
func (s *Session) processDeath(ev systems.DeathEvent) {
	s.logEntry.WithFields(logrus.Fields{
		"turn":   s.turn,
		"name":   ev.Name,
		"effect": ev.Effect.String(),
	}).Info("Entity died.")

	if ev.Effect == enums.DeathPlayer {
		s.state = domain.StateDead
	}
}
