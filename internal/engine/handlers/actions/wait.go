package actions

import "rogue-engine/internal/engine/handlers"

// HandleWait пропускает ход: монстры ходят, игрок стоит.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.TurnResult(), nil
}
