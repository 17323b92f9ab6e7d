package domain

// VisibleSet - множество клеток, видимых прямо сейчас.
// Ключ: индекс y*width+x.
type VisibleSet struct {
	width  int
	height int
	tiles  map[int]struct{}
}

func NewVisibleSet(width, height int) VisibleSet {
	return VisibleSet{width: width, height: height, tiles: make(map[int]struct{})}
}

// Add игнорирует координаты вне сетки.
func (v VisibleSet) Add(x, y int) {
	if !v.inBounds(x, y) || v.tiles == nil {
		return
	}
	v.tiles[y*v.width+x] = struct{}{}
}

func (v VisibleSet) Has(x, y int) bool {
	if !v.inBounds(x, y) {
		return false
	}
	_, ok := v.tiles[y*v.width+x]
	return ok
}

func (v VisibleSet) Len() int {
	return len(v.tiles)
}

// Each обходит клетки в произвольном порядке.
func (v VisibleSet) Each(fn func(x, y int)) {
	for idx := range v.tiles {
		fn(idx%v.width, idx/v.width)
	}
}

func (v VisibleSet) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}
