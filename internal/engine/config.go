package engine

import (
	"os"
	"strconv"
	"time"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"
)

// Значения по умолчанию, не относящиеся к генератору карты
const (
	DefaultTorchRadius     = 10
	DefaultLogLines        = 5
	DefaultHealAmount      = 4
	DefaultLightningDamage = 20
	DefaultLightningRange  = 5
	DefaultConfuseTurns    = 10
	DefaultConfuseRange    = 8
)

// Config хранит параметры запуска сессии
type Config struct {
	// Seed - мастер-зерно. От него зависит карта и весь ход партии.
	Seed int64

	Width, Height      int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int

	TorchRadius    int
	InventorySlots int
	LogLines       int

	HealAmount      int
	LightningDamage int
	LightningRange  int
	ConfuseTurns    int
	ConfuseRange    int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:               time.Now().UnixNano(),
		Width:              dungeon.MapWidth,
		Height:             dungeon.MapHeight,
		MaxRooms:           dungeon.MaxRooms,
		RoomMinSize:        dungeon.MinSize,
		RoomMaxSize:        dungeon.MaxSize,
		MaxMonstersPerRoom: dungeon.MaxMonstersPerRoom,
		MaxItemsPerRoom:    dungeon.MaxItemsPerRoom,
		TorchRadius:        DefaultTorchRadius,
		InventorySlots:     domain.DefaultInventorySlots,
		LogLines:           DefaultLogLines,
		HealAmount:         DefaultHealAmount,
		LightningDamage:    DefaultLightningDamage,
		LightningRange:     DefaultLightningRange,
		ConfuseTurns:       DefaultConfuseTurns,
		ConfuseRange:       DefaultConfuseRange,
	}
}

// ConfigFromEnv - NewConfig с переопределениями из окружения.
// Нечисловые значения игнорируются с предупреждением.
func ConfigFromEnv() Config {
	cfg := NewConfig()
	if v, ok := envInt64("CD_SEED"); ok {
		cfg.Seed = v
	}
	envIntInto("CD_MAP_WIDTH", &cfg.Width)
	envIntInto("CD_MAP_HEIGHT", &cfg.Height)
	envIntInto("CD_MAX_ROOMS", &cfg.MaxRooms)
	envIntInto("CD_TORCH_RADIUS", &cfg.TorchRadius)
	return cfg
}

// DungeonParams переводит конфиг в параметры генератора, подставляя
// силу предметов в стандартные шаблоны.
func (c Config) DungeonParams() dungeon.Params {
	heal := dungeon.HealingPotion
	heal.Properties.Amount = c.HealAmount

	lightning := dungeon.LightningScroll
	lightning.Properties.Amount = c.LightningDamage
	lightning.Properties.Range = c.LightningRange

	confuse := dungeon.ConfusionScroll
	confuse.Properties.Turns = c.ConfuseTurns
	confuse.Properties.Range = c.ConfuseRange

	return dungeon.Params{
		Width:              c.Width,
		Height:             c.Height,
		MaxRooms:           c.MaxRooms,
		RoomMinSize:        c.RoomMinSize,
		RoomMaxSize:        c.RoomMaxSize,
		MaxMonstersPerRoom: c.MaxMonstersPerRoom,
		MaxItemsPerRoom:    c.MaxItemsPerRoom,
		Monsters:           dungeon.DefaultMonsters(),
		Items:              []dungeon.ItemTemplate{heal, lightning, confuse},
	}
}

func envInt64(key string) (int64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("Ignoring malformed env value.")
		return 0, false
	}
	return v, true
}

func envIntInto(key string, dst *int) {
	if v, ok := envInt64(key); ok {
		*dst = int(v)
	}
}
