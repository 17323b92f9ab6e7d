package domain

import "rogue-engine/internal/core/types"

// EntityList - арена всех сущностей сессии плюс упорядоченный список тех,
// что лежат на карте. Порядок важен: он задаёт порядок отрисовки и ходов ИИ,
// и "первой" сущностью в клетке считается та, что раньше в списке.
//
// Предмет, поднятый в инвентарь, уходит из списка карты, но остаётся в арене,
// поэтому Get по его ID продолжает работать.
type EntityList struct {
	arena map[types.EntityID]*Entity
	order []*Entity
	next  uint32
}

func NewEntityList() *EntityList {
	return &EntityList{arena: make(map[types.EntityID]*Entity)}
}

// Spawn выдаёт сущности ID и ставит её в конец списка карты.
func (l *EntityList) Spawn(e *Entity) *Entity {
	l.Register(e)
	l.order = append(l.order, e)
	return e
}

// Register выдаёт ID, не выкладывая сущность на карту (например, стартовый
// инвентарь игрока).
func (l *EntityList) Register(e *Entity) *Entity {
	if e.ID.IsNil() {
		l.next++
		e.ID = types.NewEntityID(e.Kind, l.next)
	}
	l.arena[e.ID] = e
	return e
}

// Get ищет сущность в арене, где бы она ни находилась.
func (l *EntityList) Get(id types.EntityID) *Entity {
	return l.arena[id]
}

// All возвращает список карты. Слайс принадлежит EntityList, менять его нельзя.
func (l *EntityList) All() []*Entity {
	return l.order
}

// Snapshot - копия списка карты для обхода, во время которого список меняется.
func (l *EntityList) Snapshot() []*Entity {
	out := make([]*Entity, len(l.order))
	copy(out, l.order)
	return out
}

func (l *EntityList) Len() int {
	return len(l.order)
}

// OnMap: сущность сейчас лежит на карте.
func (l *EntityList) OnMap(id types.EntityID) bool {
	return l.indexOf(id) >= 0
}

// Remove убирает сущность с карты (в арене она остаётся).
func (l *EntityList) Remove(id types.EntityID) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.order = append(l.order[:i], l.order[i+1:]...)
	return true
}

// Place возвращает уже зарегистрированную сущность на карту, в конец списка.
func (l *EntityList) Place(e *Entity) {
	if l.OnMap(e.ID) {
		return
	}
	l.Register(e)
	l.order = append(l.order, e)
}

// SendToBack переносит сущность в начало списка: её рисуют первой,
// и всё остальное в той же клетке оказывается поверх.
func (l *EntityList) SendToBack(id types.EntityID) {
	i := l.indexOf(id)
	if i <= 0 {
		return
	}
	e := l.order[i]
	copy(l.order[1:i+1], l.order[:i])
	l.order[0] = e
}

// At возвращает сущности карты в клетке в порядке списка.
func (l *EntityList) At(x, y int) []*Entity {
	var out []*Entity
	for _, e := range l.order {
		if e.IsAt(x, y) {
			out = append(out, e)
		}
	}
	return out
}

func (l *EntityList) indexOf(id types.EntityID) int {
	for i, e := range l.order {
		if e.ID == id {
			return i
		}
	}
	return -1
}
