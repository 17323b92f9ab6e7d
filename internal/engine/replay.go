package engine

import (
	"rogue-engine/internal/domain"
)

// Replay создает новую сессию из сида журнала и подаёт в неё все
// записанные намерения по порядку. cfg задаёт остальные параметры:
// они должны совпадать с исходной партией.
func Replay(cfg Config, journal *domain.ReplaySession) *Session {
	cfg.Seed = journal.Seed
	s := NewSession(cfg)
	for _, a := range journal.Actions {
		s.Submit(a.Intent)
	}
	return s
}
