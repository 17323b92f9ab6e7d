package domain

import "math"

// DistanceTo возвращает евклидово расстояние.
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredTo - для сравнений без корня.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent: соседняя клетка, включая диагонали, но не сама точка.
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift возвращает новую позицию, текущая не меняется.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) Equals(x, y int) bool {
	return p.X == x && p.Y == y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
