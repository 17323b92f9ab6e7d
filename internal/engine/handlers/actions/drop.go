package actions

import (
	"fmt"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/systems"
)

// HandleDrop выкладывает предмет из слота под ноги.
func HandleDrop(ctx handlers.Context, slot handlers.Slot) (handlers.Result, error) {
	item, err := systems.Drop(ctx.Turn.Entities, ctx.Actor, int(slot))
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:      fmt.Sprintf("You dropped a %s.", item.Name),
		MsgType:  domain.MsgInfo,
		Color:    types.ColorYellow,
		TookTurn: true,
	}, nil
}
