package actions

import (
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/systems"
)

// HandleUse обрабатывает команду USE. Отменённый эффект (например, лечение
// при полном здоровье) всё равно тратит ход; неверный слот - нет.
func HandleUse(ctx handlers.Context, slot handlers.Slot) (handlers.Result, error) {
	if _, err := systems.UseItem(ctx.Turn, ctx.Actor, int(slot)); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.TurnResult(), nil
}
