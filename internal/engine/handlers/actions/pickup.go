package actions

import (
	"errors"
	"fmt"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/systems"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета с земли.
// Ход тратится только если предмет действительно поднят.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	item := systems.ItemAt(ctx.Turn.Entities.All(), actor.Pos.X, actor.Pos.Y)
	if item == nil {
		return handlers.Result{Msg: "There is nothing here to pick up.", MsgType: domain.MsgWarning, Color: types.ColorWhite}, nil
	}

	if err := systems.PickUp(ctx.Turn.Entities, actor, item); err != nil {
		if errors.Is(err, domain.ErrInventoryFull) {
			return handlers.Result{
				Msg:     fmt.Sprintf("Your inventory is full, cannot pick up %s.", item.Name),
				MsgType: domain.MsgWarning,
				Color:   types.ColorDarkRed,
			}, nil
		}
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Msg:      fmt.Sprintf("You picked up a %s!", item.Name),
		MsgType:  domain.MsgInfo,
		Color:    types.ColorGreen,
		TookTurn: true,
	}, nil
}
