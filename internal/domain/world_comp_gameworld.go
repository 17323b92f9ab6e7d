package domain

import "fmt"

func (w *GameWorld) GetIndex(x, y int) int {
	return y*w.Width + x
}

func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Width && y < w.Height
}

// TileAt возвращает копию клетки или ErrOutOfBounds.
func (w *GameWorld) TileAt(x, y int) (Tile, error) {
	if !w.InBounds(x, y) {
		return Tile{Blocked: true, BlocksSight: true}, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return w.Map[y][x], nil
}

// IsWall: за пределами карты всё считается стеной.
func (w *GameWorld) IsWall(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return w.Map[y][x].Blocked
}

// IsTransparent: за пределами карты ничего не видно.
func (w *GameWorld) IsTransparent(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	return !w.Map[y][x].BlocksSight
}

func (w *GameWorld) IsExplored(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	return w.Map[y][x].Explored
}

// MarkExplored возвращает true, если клетка была открыта впервые.
func (w *GameWorld) MarkExplored(x, y int) bool {
	if !w.InBounds(x, y) || w.Map[y][x].Explored {
		return false
	}
	w.Map[y][x].Explored = true
	return true
}

// Carve делает клетку проходимой и прозрачной. Вне карты - no-op.
func (w *GameWorld) Carve(x, y int) {
	if !w.InBounds(x, y) {
		return
	}
	w.Map[y][x].Blocked = false
	w.Map[y][x].BlocksSight = false
}

// ExploredCount - сколько клеток игрок уже видел.
func (w *GameWorld) ExploredCount() int {
	n := 0
	for y := range w.Map {
		for x := range w.Map[y] {
			if w.Map[y][x].Explored {
				n++
			}
		}
	}
	return n
}
