package agent

import (
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/api"
)

// localView - локальная копия мира, восстановленная из снимка.
// Всё, чего бот не видел, считается скалой.
type localView struct {
	world    *domain.GameWorld
	me       *api.EntityView
	monsters []domain.Position
	items    []domain.Position
	blocked  map[domain.Position]bool
}

func newLocalView(state api.ServerResponse) *localView {
	width, height := 0, 0
	if state.Grid != nil {
		width, height = state.Grid.Width, state.Grid.Height
	}

	v := &localView{
		world:   domain.NewGameWorld(width, height),
		blocked: make(map[domain.Position]bool),
	}

	for _, tv := range state.Map {
		if !v.world.InBounds(tv.X, tv.Y) {
			continue
		}
		if !tv.IsWall {
			v.world.Carve(tv.X, tv.Y)
		}
		v.world.MarkExplored(tv.X, tv.Y)
	}

	for i := range state.Entities {
		ev := &state.Entities[i]
		pos := domain.Position{X: ev.Pos.X, Y: ev.Pos.Y}
		switch {
		case ev.ID == state.MyEntityID:
			v.me = ev
		case ev.Type == "MONSTER" && ev.Stats != nil && !ev.Stats.IsDead:
			v.monsters = append(v.monsters, pos)
			v.blocked[pos] = true
		case ev.Type == "ITEM":
			v.items = append(v.items, pos)
		}
	}
	return v
}

func (v *localView) mePos() domain.Position {
	return domain.Position{X: v.me.Pos.X, Y: v.me.Pos.Y}
}

// nearest - ближайшая позиция; при равенстве первая в списке.
func (v *localView) nearest(list []domain.Position) *domain.Position {
	me := v.mePos()
	var best *domain.Position
	bestDist := 0
	for i := range list {
		d := me.DistanceSquaredTo(list[i])
		if best == nil || d < bestDist {
			best, bestDist = &list[i], d
		}
	}
	return best
}

// isFrontier: исследованный пол рядом с неисследованной клеткой.
func (v *localView) isFrontier(p domain.Position) bool {
	if v.world.IsWall(p.X, p.Y) {
		return false
	}
	for _, d := range directions {
		n := p.Shift(d[0], d[1])
		if v.world.InBounds(n.X, n.Y) && !v.world.IsExplored(n.X, n.Y) {
			return true
		}
	}
	return false
}

func (v *localView) stepTo(goal func(domain.Position) bool) (domain.Intent, bool) {
	dx, dy, ok := firstStep(v.world, v.blocked, v.mePos(), goal)
	if !ok {
		return domain.Intent{}, false
	}
	return domain.MoveIntent(dx, dy), true
}
