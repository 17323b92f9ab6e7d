package actions

import (
	"rogue-engine/internal/core/types"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
)

// HandleInit приветствует игрока. Ход не тратится.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings.",
		MsgType: domain.MsgInfo,
		Color:   types.ColorDarkRed,
	}, nil
}
