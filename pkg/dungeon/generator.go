package dungeon

import (
	"math/rand"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Значения по умолчанию для карты
const (
	MapWidth           = 80
	MapHeight          = 50
	MaxRooms           = 30
	MinSize            = 6
	MaxSize            = 10
	MaxMonstersPerRoom = 3
	MaxItemsPerRoom    = 2
)

// Params - всё, что нужно генератору. Нулевые Width, Height и RoomMinSize
// заменяются значениями по умолчанию, RoomMaxSize не меньше RoomMinSize.
// MaxRooms, MaxMonstersPerRoom и MaxItemsPerRoom берутся как есть:
// 0 значит "ни одной". Пустые списки шаблонов - "никого не спавнить".
type Params struct {
	Width, Height            int
	MaxRooms                 int
	RoomMinSize, RoomMaxSize int
	MaxMonstersPerRoom       int
	MaxItemsPerRoom          int

	Monsters []MonsterTemplate
	Items    []ItemTemplate
}

// DefaultParams повторяет классическую раскладку 80x50.
func DefaultParams() Params {
	return Params{
		Width:              MapWidth,
		Height:             MapHeight,
		MaxRooms:           MaxRooms,
		RoomMinSize:        MinSize,
		RoomMaxSize:        MaxSize,
		MaxMonstersPerRoom: MaxMonstersPerRoom,
		MaxItemsPerRoom:    MaxItemsPerRoom,
		Monsters:           DefaultMonsters(),
		Items:              DefaultItems(),
	}
}

func (p Params) normalized() Params {
	if p.Width <= 0 {
		p.Width = MapWidth
	}
	if p.Height <= 0 {
		p.Height = MapHeight
	}
	if p.RoomMinSize <= 0 {
		p.RoomMinSize = MinSize
	}
	if p.RoomMaxSize < p.RoomMinSize {
		p.RoomMaxSize = p.RoomMinSize
	}
	p.MaxRooms = max(p.MaxRooms, 0)
	p.MaxMonstersPerRoom = max(p.MaxMonstersPerRoom, 0)
	p.MaxItemsPerRoom = max(p.MaxItemsPerRoom, 0)
	return p
}

// Level - результат генерации. Сущности ещё без ID: их регистрирует сессия.
type Level struct {
	World    *domain.GameWorld
	Rooms    []Rect
	Spawn    domain.Position
	Entities []*domain.Entity
}

// Rect - комната, границы включительно. Стены комнаты лежат на X1/X2 и Y1/Y2.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects считает касание границами пересечением.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Interior: есть ли у комнаты хоть одна клетка пола.
func (r Rect) HasInterior() bool {
	return r.X2-r.X1 >= 2 && r.Y2-r.Y1 >= 2
}

// Generate строит уровень целиком. Один rng управляет всем: одинаковый
// seed даёт одинаковую карту и одинаковую расстановку.
func Generate(p Params, rng *rand.Rand) Level {
	return NewLevel(p, rng).
		WithRooms().
		Populate().
		Build()
}

// --- Вспомогательные функции ---

func createRoom(w *domain.GameWorld, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			w.Carve(x, y)
		}
	}
}

func createHCorridor(w *domain.GameWorld, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		w.Carve(x, y)
	}
}

func createVCorridor(w *domain.GameWorld, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		w.Carve(x, y)
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}

var genLogger = logger.Log.WithFields(logrus.Fields{"component": "dungeon_generator"})
