package agent

import (
	"rogue-engine/internal/domain"
)

// Порядок обхода фиксирован: от него зависит детерминизм бота.
var directions = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// firstStep - поиск в ширину по исследованному полу от from до ближайшей
// клетки, где goal == true. Возвращает первый шаг пути.
// Клетки из blocked непроходимы, кроме самой цели. Стартовая клетка целью
// не считается.
func firstStep(w *domain.GameWorld, blocked map[domain.Position]bool, from domain.Position, goal func(domain.Position) bool) (int, int, bool) {
	type node struct {
		pos domain.Position
		dir int // индекс первого шага в directions
	}

	walkable := func(p domain.Position) bool {
		return w.InBounds(p.X, p.Y) && w.IsExplored(p.X, p.Y) && !w.IsWall(p.X, p.Y)
	}

	visited := make([]bool, w.Width*w.Height)
	if !w.InBounds(from.X, from.Y) {
		return 0, 0, false
	}
	visited[w.GetIndex(from.X, from.Y)] = true

	queue := make([]node, 0, 64)
	push := func(p domain.Position, dir int) {
		if !walkable(p) || visited[w.GetIndex(p.X, p.Y)] {
			return
		}
		if blocked[p] && !goal(p) {
			return
		}
		visited[w.GetIndex(p.X, p.Y)] = true
		queue = append(queue, node{pos: p, dir: dir})
	}

	for i, d := range directions {
		push(from.Shift(d[0], d[1]), i)
	}

	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if goal(n.pos) {
			d := directions[n.dir]
			return d[0], d[1], true
		}
		if blocked[n.pos] {
			continue
		}
		for _, d := range directions {
			push(n.pos.Shift(d[0], d[1]), n.dir)
		}
	}
	return 0, 0, false
}
