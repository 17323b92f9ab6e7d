package terminal

import (
	"fmt"

	"rogue-engine/pkg/api"

	"github.com/gdamore/tcell/v2"
)

const hpBarWidth = 20

// Renderer рисует снимок сессии на экране tcell: карта сверху,
// под ней полоса здоровья и последние сообщения.
type Renderer struct {
	screen tcell.Screen
	// logLines - сколько строк лога помещается под картой.
	logLines int
}

func NewRenderer(screen tcell.Screen, logLines int) *Renderer {
	return &Renderer{screen: screen, logLines: logLines}
}

// panelHeight - строка HUD плюс строки лога.
func (r *Renderer) panelHeight() int {
	return 1 + r.logLines
}

// Draw перерисовывает весь экран. Логи в state должны быть полными
// (снимок с отметкой 0), а не только свежими.
func (r *Renderer) Draw(state *api.ServerResponse, mode Mode) {
	r.screen.Clear()
	w, h := r.screen.Size()
	mapH := h - r.panelHeight()
	if mapH < 1 {
		mapH = 1
	}

	ox, oy := 0, 0
	if state.Grid != nil {
		if me := findMe(state); me != nil {
			ox = cameraOffset(me.Pos.X, w, state.Grid.Width)
			oy = cameraOffset(me.Pos.Y, mapH, state.Grid.Height)
		}
	}

	for _, t := range state.Map {
		r.putCell(t.X-ox, t.Y-oy, w, mapH, t.Symbol, t.Color)
	}
	for _, e := range state.Entities {
		r.putCell(e.Pos.X-ox, e.Pos.Y-oy, w, mapH, e.Render.Symbol, e.Render.Color)
	}

	r.drawPanel(state, mapH)
	if mode != ModeMap {
		r.drawInventory(state, mode)
	}
	r.screen.Show()
}

func (r *Renderer) putCell(x, y, w, h int, symbol, color string) {
	if x < 0 || y < 0 || x >= w || y >= h || symbol == "" {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.GetColor(color))
	r.screen.SetContent(x, y, []rune(symbol)[0], nil, style)
}

func (r *Renderer) drawPanel(state *api.ServerResponse, top int) {
	if state.Player != nil {
		r.drawBar(0, top, state.Player.Stats.HP, state.Player.Stats.MaxHP)
	}
	r.print(hpBarWidth+2, top, tcell.StyleDefault, fmt.Sprintf("Turn: %d", state.Turn))
	if state.State == "DEAD" {
		r.print(hpBarWidth+14, top, tcell.StyleDefault.Foreground(tcell.ColorRed), "You died. Press q to quit.")
	}

	// Новые сообщения внизу
	logs := state.Logs
	if len(logs) > r.logLines {
		logs = logs[len(logs)-r.logLines:]
	}
	for i, m := range logs {
		r.print(0, top+1+i, tcell.StyleDefault.Foreground(tcell.GetColor(m.Color)), m.Text)
	}
}

// drawBar - полоса здоровья: закрашенная часть пропорциональна HP.
func (r *Renderer) drawBar(x, y, value, maximum int) {
	filled := 0
	if maximum > 0 && value > 0 {
		filled = value * hpBarWidth / maximum
	}
	text := []rune(fmt.Sprintf("HP: %d/%d", value, maximum))
	for i := 0; i < hpBarWidth; i++ {
		bg := tcell.ColorMaroon
		if i < filled {
			bg = tcell.ColorGreen
		}
		ch := ' '
		if i < len(text) {
			ch = text[i]
		}
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite))
	}
}

func (r *Renderer) drawInventory(state *api.ServerResponse, mode Mode) {
	title := "Press the key next to an item to use it, or Esc to cancel."
	if mode == ModeDrop {
		title = "Press the key next to an item to drop it, or Esc to cancel."
	}
	lines := []string{title}
	if state.Player == nil || len(state.Player.Inventory.Items) == 0 {
		lines = append(lines, "Inventory is empty.")
	} else {
		for _, it := range state.Player.Inventory.Items {
			lines = append(lines, fmt.Sprintf("(%s) %s", it.Letter, it.Name))
		}
	}

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	box := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for i, l := range lines {
		for x := 0; x < width+2; x++ {
			r.screen.SetContent(1+x, 1+i, ' ', nil, box)
		}
		r.print(2, 1+i, box, l)
	}
}

func (r *Renderer) print(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func findMe(state *api.ServerResponse) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].ID == state.MyEntityID {
			return &state.Entities[i]
		}
	}
	return nil
}

// cameraOffset держит игрока в центре окна, не выходя за края карты.
func cameraOffset(center, view, size int) int {
	if size <= view {
		return 0
	}
	o := center - view/2
	if o < 0 {
		return 0
	}
	if o > size-view {
		return size - view
	}
	return o
}
