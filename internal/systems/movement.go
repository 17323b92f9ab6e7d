package systems

import (
	"fmt"
	"math"

	"rogue-engine/internal/domain"
)

// IsBlocked: клетка непроходима, если это стена (или вне карты)
// или в ней стоит блокирующая сущность.
func IsBlocked(w *domain.GameWorld, entities []*domain.Entity, x, y int) bool {
	if w.IsWall(x, y) {
		return true
	}
	return BlockerAt(entities, x, y) != nil
}

// BlockerAt возвращает первую блокирующую сущность в клетке.
func BlockerAt(entities []*domain.Entity, x, y int) *domain.Entity {
	for _, e := range entities {
		if e.Blocks && e.IsAt(x, y) {
			return e
		}
	}
	return nil
}

// Move сдвигает сущность, если клетка назначения свободна.
// Упереться в стену - нормальная ситуация, поэтому это не ошибка, а false.
func Move(w *domain.GameWorld, entities []*domain.Entity, e *domain.Entity, dx, dy int) bool {
	target := e.Pos.Shift(dx, dy)
	if IsBlocked(w, entities, target.X, target.Y) {
		return false
	}
	e.Pos = target
	return true
}

// StepToward переводит направление на цель в один из 8 шагов сетки:
// вектор нормируется до единичной длины, каждая ось округляется отдельно.
func StepToward(from, to domain.Position) (int, int, error) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, fmt.Errorf("step from %v to itself: %w", from, domain.ErrZeroDirection)
	}
	return int(math.Round(dx / dist)), int(math.Round(dy / dist)), nil
}

// MoveToward делает один шаг к цели. Стоя на цели, ничего не делает.
func MoveToward(w *domain.GameWorld, entities []*domain.Entity, e *domain.Entity, tx, ty int) bool {
	dx, dy, err := StepToward(e.Pos, domain.Position{X: tx, Y: ty})
	if err != nil {
		return false
	}
	return Move(w, entities, e, dx, dy)
}
