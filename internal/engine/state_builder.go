package engine

import (
	"fmt"
	"strconv"
	"time"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/api"
)

var (
	wallGlyph  = types.MakeGlyph(types.ColorLightWall, '#')
	floorGlyph = types.MakeGlyph(types.ColorLightGround, '.')
)

// BuildSnapshot создает "снимок" сессии для клиента.
// Карта - только исследованные тайлы, сущности - только видимые
// (игрок виден всегда). Логи - всё, что появилось после logSeq.
func BuildSnapshot(s *Session, logSeq int) *api.ServerResponse {
	world := s.World()
	visible := s.Visible()

	// 1. Формирование карты (Map DTO)
	mapDTO := make([]api.TileView, 0, world.ExploredCount())
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			if !world.IsExplored(x, y) {
				continue
			}
			isWall := world.IsWall(x, y)
			isVisible := visible.Has(x, y)
			mapDTO = append(mapDTO, TileViewFor(isWall, isVisible, x, y))
		}
	}

	// 2. Формирование списка сущностей (Entities DTO)
	player := s.Player()
	viewEntities := make([]api.EntityView, 0, s.Entities().Len())
	for _, e := range s.Entities().All() {
		if e == player || visible.Has(e.Pos.X, e.Pos.Y) {
			viewEntities = append(viewEntities, toEntityView(e))
		}
	}

	// 3. Логи
	fresh := s.Log().Since(logSeq)
	logs := make([]api.LogEntry, 0, len(fresh))
	now := time.Now().UnixMilli()
	firstSeq := s.Log().Seq() - len(fresh)
	for i, m := range fresh {
		logs = append(logs, api.LogEntry{
			ID:        strconv.Itoa(firstSeq + i + 1),
			Text:      m.Text,
			Type:      string(m.Type),
			Color:     fmt.Sprintf("#%06X", m.Color),
			Timestamp: now,
		})
	}

	return &api.ServerResponse{
		Type:       "UPDATE",
		Turn:       s.Turn(),
		State:      s.State().String(),
		Done:       s.Done(),
		MyEntityID: player.ID.String(),
		Grid:       &api.GridMeta{Width: world.Width, Height: world.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		Player:     toPlayerView(player),
		Logs:       logs,
		LogSeq:     s.Log().Seq(),
	}
}

// TileViewFor - как выглядит тайл: яркий в поле зрения, тусклый в памяти.
func TileViewFor(isWall, isVisible bool, x, y int) api.TileView {
	g := floorGlyph
	if isWall {
		g = wallGlyph
	}
	if !isVisible {
		if isWall {
			g = g.WithColor(types.ColorDarkWall)
		} else {
			g = g.WithColor(types.ColorDarkGround)
		}
	}
	return api.TileView{
		X: x, Y: y,
		Symbol:    string(g.Rune()),
		Color:     g.HexColor(),
		IsWall:    isWall,
		IsVisible: isVisible,
	}
}

// toEntityView конвертирует доменную сущность в DTO.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: e.Kind.String(),
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	g := e.Glyph()
	view.Render.Symbol = string(g.Rune())
	view.Render.Color = g.HexColor()

	if e.Fighter != nil {
		stats := toStatsView(e.Fighter)
		view.Stats = &stats
	}
	return view
}

func toStatsView(f *domain.FighterComponent) api.StatsView {
	return api.StatsView{
		HP:      f.HP,
		MaxHP:   f.MaxHP,
		Defense: f.Defense,
		Power:   f.Power,
		IsDead:  f.Dead,
	}
}

func toPlayerView(p *domain.Entity) *api.PlayerView {
	view := &api.PlayerView{}
	if p.Fighter != nil {
		view.Stats = toStatsView(p.Fighter)
	}
	if p.Inventory == nil {
		view.Inventory.Items = []api.ItemView{}
		return view
	}

	view.Inventory.MaxSlots = p.Inventory.MaxSlots
	view.Inventory.Items = make([]api.ItemView, 0, p.Inventory.Len())
	for slot, item := range p.Inventory.Items {
		iv := api.ItemView{
			ID:     item.ID.String(),
			Slot:   slot,
			Letter: string(domain.SlotLetter(slot)),
			Name:   item.Name,
		}
		g := item.Glyph()
		iv.Symbol = string(g.Rune())
		iv.Color = g.HexColor()
		if item.Item != nil {
			iv.Effect = item.Item.Effect.String()
		}
		view.Inventory.Items = append(view.Inventory.Items, iv)
	}
	return view
}
