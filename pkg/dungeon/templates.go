package dungeon

import (
	"math/rand"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
)

// MonsterTemplate определяет шаблон для создания монстра.
// Weight задаёт относительную частоту при выборе вида.
type MonsterTemplate struct {
	Name    string
	Char    byte
	Color   uint32
	HP      int
	Defense int
	Power   int
	Weight  int
}

// Spawn создает монстра из шаблона на заданной позиции
func (t MonsterTemplate) Spawn(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		Kind:   enums.EntityKindMonster,
		Name:   t.Name,
		Pos:    pos,
		Blocks: true,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(t.Color, t.Char)},
		Fighter: &domain.FighterComponent{
			MaxHP:   t.HP,
			HP:      t.HP,
			Defense: t.Defense,
			Power:   t.Power,
			OnDeath: enums.DeathCorpse,
		},
		AI: &domain.AIComponent{Kind: enums.AIBasic},
	}
}

// --- ВРАГИ ---

var Orc = MonsterTemplate{
	Name:    "orc",
	Char:    'o',
	Color:   types.ColorGreen,
	HP:      10,
	Defense: 0,
	Power:   3,
	Weight:  80,
}

var Troll = MonsterTemplate{
	Name:    "troll",
	Char:    'I',
	Color:   types.ColorDarkGreen,
	HP:      16,
	Defense: 1,
	Power:   4,
	Weight:  20,
}

// MonsterTemplates - все доступные виды по ключу (для конфигов и отладки)
var MonsterTemplates = map[string]MonsterTemplate{
	"orc":   Orc,
	"troll": Troll,
}

// DefaultMonsters возвращает стандартную таблицу спавна.
// Порядок фиксирован: от него зависит детерминизм выбора.
func DefaultMonsters() []MonsterTemplate {
	return []MonsterTemplate{Orc, Troll}
}

// --- ПРЕДМЕТЫ ---

// ItemTemplate определяет шаблон для создания предмета-сущности
type ItemTemplate struct {
	Name   string
	Char   byte
	Color  uint32
	Weight int

	Properties domain.ItemComponent
}

// Spawn создаёт Entity-предмет из шаблона
func (t ItemTemplate) Spawn(pos domain.Position) *domain.Entity {
	props := t.Properties
	return &domain.Entity{
		Kind:   enums.EntityKindItem,
		Name:   t.Name,
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(t.Color, t.Char)},
		Item:   &props,
	}
}

var HealingPotion = ItemTemplate{
	Name:   "healing potion",
	Char:   '!',
	Color:  types.ColorViolet,
	Weight: 70,
	Properties: domain.ItemComponent{
		Effect: enums.EffectHeal,
		Amount: 4,
	},
}

var LightningScroll = ItemTemplate{
	Name:   "scroll of lightning bolt",
	Char:   '#',
	Color:  types.ColorYellow,
	Weight: 10,
	Properties: domain.ItemComponent{
		Effect: enums.EffectLightning,
		Amount: 20,
		Range:  5,
	},
}

var ConfusionScroll = ItemTemplate{
	Name:   "scroll of confusion",
	Char:   '#',
	Color:  types.ColorLightBlue,
	Weight: 20,
	Properties: domain.ItemComponent{
		Effect: enums.EffectConfuse,
		Range:  8,
		Turns:  10,
	},
}

// ItemTemplates - карта всех доступных предметов
var ItemTemplates = map[string]ItemTemplate{
	"healing_potion":   HealingPotion,
	"lightning_scroll": LightningScroll,
	"confusion_scroll": ConfusionScroll,
}

func DefaultItems() []ItemTemplate {
	return []ItemTemplate{HealingPotion, LightningScroll, ConfusionScroll}
}

// --- ВЫБОР ПО ВЕСУ ---

// pickWeighted возвращает индекс с вероятностью, пропорциональной весу.
// Неположительные веса не выпадают никогда; если все веса такие, берётся первый.
func pickWeighted(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

func pickMonster(rng *rand.Rand, table []MonsterTemplate) MonsterTemplate {
	weights := make([]int, len(table))
	for i, t := range table {
		weights[i] = t.Weight
	}
	return table[pickWeighted(rng, weights)]
}

func pickItem(rng *rand.Rand, table []ItemTemplate) ItemTemplate {
	weights := make([]int, len(table))
	for i, t := range table {
		weights[i] = t.Weight
	}
	return table[pickWeighted(rng, weights)]
}
