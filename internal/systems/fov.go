package systems

import (
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SightFunc сообщает, пропускает ли клетка взгляд.
// Координаты вне карты сюда не попадают: они всегда непрозрачны.
type SightFunc func(x, y int) bool

// ComputeVisibleTiles считает поле зрения симметричным shadowcasting'ом:
// четыре квадранта, строки с рациональными наклонами начала и конца.
// Клетка пола видна, только если её центр внутри освещённого сектора,
// поэтому A видит B тогда и только тогда, когда B видит A.
// Стены открываются при касании. Радиус евклидов: dx²+dy² <= r².
func ComputeVisibleTiles(origin domain.Position, transparent SightFunc, width, height, radius int) domain.VisibleSet {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := domain.NewVisibleSet(width, height)
	inBounds := func(x, y int) bool { return x >= 0 && y >= 0 && x < width && y < height }

	// 1. Стоя в стене или вне карты ничего не видно.
	if !inBounds(origin.X, origin.Y) || !transparent(origin.X, origin.Y) {
		fovLogger.Debug("FOV skipped: observer is not on an open tile.")
		return visible
	}
	visible.Add(origin.X, origin.Y)

	if radius <= 0 {
		return visible
	}

	blocked := func(x, y int) bool { return !inBounds(x, y) || !transparent(x, y) }

	// 2. Сканируем четыре квадранта.
	for cardinal := 0; cardinal < 4; cardinal++ {
		q := quadrant{cardinal: cardinal, ox: origin.X, oy: origin.Y}
		s := scanner{q: q, radius: radius, blocked: blocked, visible: visible}
		s.scan(row{depth: 1, start: fraction{-1, 1}, end: fraction{1, 1}})
	}

	fovLogger.WithField("visible_tiles", visible.Len()).Debug("FOV calculation complete.")
	return visible
}

// MarkExplored переносит видимые клетки в память карты. Память только растёт.
// Возвращает число впервые открытых клеток.
func MarkExplored(w *domain.GameWorld, visible domain.VisibleSet) int {
	revealed := 0
	visible.Each(func(x, y int) {
		if w.MarkExplored(x, y) {
			revealed++
		}
	})
	return revealed
}

// fraction - наклон num/den, den всегда > 0.
type fraction struct {
	num, den int
}

type row struct {
	depth      int
	start, end fraction
}

// minCol = round_ties_up(depth * start)
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol = round_ties_down(depth * end)
func (r row) maxCol() int {
	return ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
}

// isSymmetric: центр клетки лежит внутри сектора [start, end].
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num && col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// slope - наклон к левому краю клетки.
func slope(depth, col int) fraction {
	return fraction{num: 2*col - 1, den: 2 * depth}
}

// quadrant переводит (depth, col) в координаты карты.
type quadrant struct {
	cardinal int
	ox, oy   int
}

func (q quadrant) transform(depth, col int) (int, int) {
	switch q.cardinal {
	case 0: // север
		return q.ox + col, q.oy - depth
	case 1: // восток
		return q.ox + depth, q.oy + col
	case 2: // юг
		return q.ox + col, q.oy + depth
	default: // запад
		return q.ox - depth, q.oy + col
	}
}

type scanner struct {
	q       quadrant
	radius  int
	blocked func(x, y int) bool
	visible domain.VisibleSet
}

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}
	radiusSq := s.radius * s.radius

	// prev: 0 - клетки ещё не было, 1 - стена, 2 - пол
	const (
		none = iota
		wall
		floor
	)
	prev := none

	for col := r.minCol(); col <= r.maxCol(); col++ {
		x, y := s.q.transform(r.depth, col)
		isWall := s.blocked(x, y)

		if (isWall || r.isSymmetric(col)) && col*col+r.depth*r.depth <= radiusSq {
			s.visible.Add(x, y)
		}
		if prev == wall && !isWall {
			r.start = slope(r.depth, col)
		}
		if prev == floor && isWall {
			nextRow := r.next()
			nextRow.end = slope(r.depth, col)
			s.scan(nextRow)
		}

		if isWall {
			prev = wall
		} else {
			prev = floor
		}
	}

	if prev == floor {
		s.scan(r.next())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
