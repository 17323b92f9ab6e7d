package domain

import "rogue-engine/internal/core/types/enums"

// Confuse переводит ИИ в режим блуждания на turns ходов.
// Повторная конфузия лишь продлевает счётчик.
func (a *AIComponent) Confuse(turns int) {
	if a.Kind != enums.AIConfused {
		a.Previous = a.Kind
		a.Kind = enums.AIConfused
	}
	a.ConfusedTurns = turns
}

// TickConfusion уменьшает счётчик. Возвращает true, когда ИИ пришёл в себя.
func (a *AIComponent) TickConfusion() bool {
	if a.Kind != enums.AIConfused {
		return false
	}
	a.ConfusedTurns--
	if a.ConfusedTurns > 0 {
		return false
	}
	a.Kind = a.Previous
	a.Previous = enums.AINone
	a.ConfusedTurns = 0
	return true
}
