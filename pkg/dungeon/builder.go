package dungeon

import (
	"math/rand"

	"rogue-engine/internal/domain"

	"github.com/sirupsen/logrus"
)

// LevelBuilder предоставляет fluent API для создания уровней.
// Шаги идут строго по порядку: WithRooms, затем Populate, затем Build.
type LevelBuilder struct {
	params   Params
	rng      *rand.Rand
	world    *domain.GameWorld
	rooms    []Rect
	entities []*domain.Entity
	spawn    domain.Position
}

// NewLevel создает builder с картой, целиком залитой камнем.
func NewLevel(p Params, rng *rand.Rand) *LevelBuilder {
	p = p.normalized()
	return &LevelBuilder{
		params: p,
		rng:    rng,
		world:  domain.NewGameWorld(p.Width, p.Height),
		spawn:  domain.Position{X: p.Width / 2, Y: p.Height / 2},
	}
}

// WithRooms делает MaxRooms попыток поставить комнату и соединяет каждую
// принятую комнату с предыдущей L-образным коридором.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	p := b.params
	skipped := 0

	for i := 0; i < p.MaxRooms; i++ {
		w := randRange(b.rng, p.RoomMinSize, p.RoomMaxSize)
		h := randRange(b.rng, p.RoomMinSize, p.RoomMaxSize)

		// Комната не влезает в карту при таком размере
		if p.Width-w-1 < 0 || p.Height-h-1 < 0 {
			skipped++
			continue
		}
		x := randRange(b.rng, 0, p.Width-w-1)
		y := randRange(b.rng, 0, p.Height-h-1)

		newRoom := NewRect(x, y, w, h)

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(b.world, newRoom)
		cx, cy := newRoom.Center()

		if len(b.rooms) == 0 {
			b.spawn = domain.Position{X: cx, Y: cy}
		} else {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			if b.rng.Intn(2) == 1 {
				createHCorridor(b.world, prevX, cx, prevY)
				createVCorridor(b.world, prevY, cy, cx)
			} else {
				createVCorridor(b.world, prevY, cy, prevX)
				createHCorridor(b.world, prevX, cx, cy)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	genLogger.WithFields(logrus.Fields{
		"attempts": p.MaxRooms,
		"rooms":    len(b.rooms),
		"skipped":  skipped,
	}).Debug("Rooms carved.")

	if len(b.rooms) == 0 && p.MaxRooms > 0 {
		genLogger.WithFields(logrus.Fields{
			"width":    p.Width,
			"height":   p.Height,
			"min_size": p.RoomMinSize,
		}).Warn("No room fits the map, level is solid rock.")
	}
	return b
}

// Populate расставляет монстров и предметы по всем комнатам.
func (b *LevelBuilder) Populate() *LevelBuilder {
	for _, room := range b.rooms {
		if !room.HasInterior() {
			continue
		}
		b.placeMonsters(room)
		b.placeItems(room)
	}

	genLogger.WithField("entities", len(b.entities)).Debug("Level populated.")
	return b
}

func (b *LevelBuilder) placeMonsters(room Rect) {
	if len(b.params.Monsters) == 0 {
		return
	}
	count := b.rng.Intn(b.params.MaxMonstersPerRoom + 1)
	for i := 0; i < count; i++ {
		pos := b.randomInterior(room)
		if !b.canPlace(pos) {
			continue
		}
		tmpl := pickMonster(b.rng, b.params.Monsters)
		b.entities = append(b.entities, tmpl.Spawn(pos))
	}
}

func (b *LevelBuilder) placeItems(room Rect) {
	if len(b.params.Items) == 0 {
		return
	}
	count := b.rng.Intn(b.params.MaxItemsPerRoom + 1)
	for i := 0; i < count; i++ {
		pos := b.randomInterior(room)
		if !b.canPlace(pos) {
			continue
		}
		tmpl := pickItem(b.rng, b.params.Items)
		b.entities = append(b.entities, tmpl.Spawn(pos))
	}
}

func (b *LevelBuilder) randomInterior(room Rect) domain.Position {
	return domain.Position{
		X: randRange(b.rng, room.X1+1, room.X2-1),
		Y: randRange(b.rng, room.Y1+1, room.Y2-1),
	}
}

// canPlace: клетка пола, не точка появления игрока и без блокирующей
// сущности. Правило одно для монстров и предметов.
func (b *LevelBuilder) canPlace(pos domain.Position) bool {
	if b.world.IsWall(pos.X, pos.Y) || pos == b.spawn {
		return false
	}
	for _, e := range b.entities {
		if e.Blocks && e.IsAt(pos.X, pos.Y) {
			return false
		}
	}
	return true
}

// GetStartPos возвращает стартовую позицию (центр первой комнаты).
// Без комнат это центр карты.
func (b *LevelBuilder) GetStartPos() domain.Position {
	return b.spawn
}

// Build собирает и возвращает готовый уровень.
func (b *LevelBuilder) Build() Level {
	return Level{
		World:    b.world,
		Rooms:    b.rooms,
		Spawn:    b.spawn,
		Entities: b.entities,
	}
}
