package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - статическое состояние клетки плюс память игрока.
// Explored только растёт: выставляется движком видимости и никогда не сбрасывается.
type Tile struct {
	Blocked     bool `json:"blocked"`
	BlocksSight bool `json:"blocksSight"`
	Explored    bool `json:"explored"`
}

// NewTile создаёт клетку, у которой BlocksSight совпадает с Blocked.
func NewTile(blocked bool) Tile {
	return Tile{Blocked: blocked, BlocksSight: blocked}
}

// GameWorld - сетка фиксированного размера. Map хранится построчно: Map[y][x].
type GameWorld struct {
	Map    [][]Tile `json:"map"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// NewGameWorld заполняет всю карту непроходимой скалой.
func NewGameWorld(width, height int) *GameWorld {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := range row {
			row[x] = NewTile(true)
		}
		m[y] = row
	}
	return &GameWorld{Map: m, Width: width, Height: height}
}
