package systems

import (
	"math/rand"
	"testing"

	"rogue-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fovOf(w *domain.GameWorld, x, y, radius int) domain.VisibleSet {
	return ComputeVisibleTiles(domain.Position{X: x, Y: y}, w.IsTransparent, w.Width, w.Height, radius)
}

// randomCave: открытое поле с долей случайных колонн.
func randomCave(rng *rand.Rand, width, height int, density float64) *domain.GameWorld {
	w := domain.NewGameWorld(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() >= density {
				w.Carve(x, y)
			}
		}
	}
	return w
}

func TestComputeVisibleTiles_OpenRoomIsDisc(t *testing.T) {
	w := openWorld(21, 21)
	v := fovOf(w, 10, 10, 4)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx, dy := x-10, y-10
			inside := dx*dx+dy*dy <= 16
			assert.Equal(t, inside, v.Has(x, y), "tile (%d,%d)", x, y)
		}
	}
}

func TestComputeVisibleTiles_Origin(t *testing.T) {
	w := openWorld(5, 5)

	v := fovOf(w, 2, 2, 0)
	assert.Equal(t, 1, v.Len(), "radius 0 sees only the origin")
	assert.True(t, v.Has(2, 2))

	v = fovOf(w, 0, 0, 5)
	assert.Equal(t, 0, v.Len(), "observer inside a wall sees nothing")

	v = fovOf(w, -1, 3, 5)
	assert.Equal(t, 0, v.Len())
}

func TestComputeVisibleTiles_WallCastsShadow(t *testing.T) {
	w := openWorld(12, 5)
	w.Map[2][5] = domain.NewTile(true)

	v := fovOf(w, 2, 2, 10)

	assert.True(t, v.Has(5, 2), "wall itself is lit")
	assert.False(t, v.Has(6, 2), "tile right behind the wall is hidden")
	assert.False(t, v.Has(8, 2))
	assert.True(t, v.Has(4, 1))
}

func TestComputeVisibleTiles_NeverOutOfBounds(t *testing.T) {
	w := domain.NewGameWorld(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			w.Carve(x, y)
		}
	}
	v := fovOf(w, 0, 0, 10)

	v.Each(func(x, y int) {
		assert.True(t, w.InBounds(x, y), "(%d,%d) out of bounds", x, y)
	})
	assert.Equal(t, 36, v.Len())
}

func TestComputeVisibleTiles_Symmetry(t *testing.T) {
	const (
		size   = 24
		radius = 8
	)

	for seed := int64(1); seed <= 6; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w := randomCave(rng, size, size, 0.25)

		fov := make(map[domain.Position]domain.VisibleSet)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if w.IsTransparent(x, y) {
					fov[domain.Position{X: x, Y: y}] = fovOf(w, x, y, radius)
				}
			}
		}

		for a, va := range fov {
			for b, vb := range fov {
				if a == b || a.DistanceSquaredTo(b) > radius*radius {
					continue
				}
				if va.Has(b.X, b.Y) != vb.Has(a.X, a.Y) {
					t.Fatalf("seed %d: asymmetric visibility between %v and %v (a sees b: %v)",
						seed, a, b, va.Has(b.X, b.Y))
				}
			}
		}
	}
}

func TestMarkExplored_Monotonic(t *testing.T) {
	w := openWorld(20, 20)

	first := MarkExplored(w, fovOf(w, 3, 3, 3))
	require.Greater(t, first, 0)
	before := w.ExploredCount()

	// Уходим в другой угол: старая память не стирается
	MarkExplored(w, fovOf(w, 16, 16, 3))
	assert.Greater(t, w.ExploredCount(), before)
	assert.True(t, w.IsExplored(3, 3))

	// Повторный показ той же области ничего не добавляет
	assert.Equal(t, 0, MarkExplored(w, fovOf(w, 3, 3, 3)))
}
