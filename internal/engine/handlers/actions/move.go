package actions

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/systems"
)

// HandleMove: если в клетке назначения стоит боец, бьём его, иначе шагаем.
// Удар в стену - тоже ход, но поле зрения не меняется.
func HandleMove(ctx handlers.Context, p handlers.Direction) (handlers.Result, error) {
	t := ctx.Turn
	tx, ty := ctx.Actor.Pos.X+p.Dx, ctx.Actor.Pos.Y+p.Dy

	if target := fighterAt(t.Entities.All(), ctx.Actor, tx, ty); target != nil {
		t.Melee(ctx.Actor, target)
		return handlers.Result{TookTurn: true, FOVDirty: true}, nil
	}

	moved := systems.Move(t.World, t.Entities.All(), ctx.Actor, p.Dx, p.Dy)
	return handlers.Result{TookTurn: true, FOVDirty: moved}, nil
}

// fighterAt - первая в порядке списка сущность с боевым компонентом.
func fighterAt(entities []*domain.Entity, actor *domain.Entity, x, y int) *domain.Entity {
	for _, e := range entities {
		if e != actor && e.Fighter != nil && e.IsAt(x, y) {
			return e
		}
	}
	return nil
}
