package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой "снимок" мира, видимого игроку после очередного цикла.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// Turn сколько ходов потрачено с начала партии.
	Turn int `json:"turn"`

	// State "PLAYING" или "DEAD". После DEAD клиент может только выйти.
	State string `json:"state"`

	// Done партия закрыта (QUIT).
	Done bool `json:"done,omitempty"`

	// Token ID инстанса, к которому привязано соединение.
	Token string `json:"token,omitempty"`

	// MyEntityID ID сущности игрока.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей в порядке отрисовки.
	Entities []EntityView `json:"entities,omitempty"`

	// Player характеристики и рюкзак игрока (HUD).
	Player *PlayerView `json:"player,omitempty"`

	// Logs сообщения, появившиеся после LogSeq прошлого снимка.
	Logs   []LogEntry `json:"logs,omitempty"`
	LogSeq int        `json:"logSeq"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	// Остальные исследованные тайлы рендерятся тускло ("туман войны").
	IsVisible bool `json:"isVisible"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, MONSTER, ITEM, CORPSE
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats есть только у живых бойцов (и у погибшего игрока).
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик бойца.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Defense int  `json:"defense"`
	Power   int  `json:"power"`
	IsDead  bool `json:"isDead"`
}

// PlayerView - всё, что нужно для HUD.
type PlayerView struct {
	Stats     StatsView     `json:"stats"`
	Inventory InventoryView `json:"inventory"`
}

// ItemView представляет предмет в рюкзаке
type ItemView struct {
	ID     string `json:"id"`
	Slot   int    `json:"slot"`
	Letter string `json:"letter"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Effect string `json:"effect"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, DEATH, WARNING
	Color     string `json:"color"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID инстанса. Сервер подставляет его сам по соединению,
	// клиент может его не заполнять.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, PICKUP, USE, DROP, WAIT, QUIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ItemPayload используется для действий с предметами рюкзака (USE, DROP).
// Можно передать либо номер слота, либо букву меню.
type ItemPayload struct {
	Slot   *int   `json:"slot,omitempty"`
	Letter string `json:"letter,omitempty"`
}
