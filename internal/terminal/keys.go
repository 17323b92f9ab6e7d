package terminal

import (
	"rogue-engine/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Mode - что сейчас ждёт ввод: шаг по карте или выбор предмета.
type Mode uint8

const (
	ModeMap Mode = iota
	ModeUse
	ModeDrop
)

type direction struct{ dx, dy int }

var keyDirections = map[tcell.Key]direction{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	// Цифровой блок без NumLock
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

var runeDirections = map[rune]direction{
	'k': {0, -1}, 'j': {0, 1}, 'h': {-1, 0}, 'l': {1, 0},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'8': {0, -1}, '2': {0, 1}, '4': {-1, 0}, '6': {1, 0},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

// Input переводит нажатия в намерения и помнит открытое меню инвентаря.
type Input struct {
	mode Mode
}

func (in *Input) Mode() Mode { return in.mode }

// Handle возвращает намерение для клавиши. ok == false - клавиша
// только переключила меню или ничего не значит.
func (in *Input) Handle(ev *tcell.EventKey) (domain.Intent, bool) {
	if in.mode != ModeMap {
		return in.handleMenu(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.SimpleIntent(domain.ActionQuit), true
	case tcell.KeyRune:
	default:
		if d, ok := keyDirections[ev.Key()]; ok {
			return domain.MoveIntent(d.dx, d.dy), true
		}
		return domain.Intent{}, false
	}

	r := ev.Rune()
	if d, ok := runeDirections[r]; ok {
		return domain.MoveIntent(d.dx, d.dy), true
	}
	switch r {
	case '.', '5':
		return domain.SimpleIntent(domain.ActionWait), true
	case 'g', ',':
		return domain.SimpleIntent(domain.ActionPickUp), true
	case 'i':
		in.mode = ModeUse
	case 'd':
		in.mode = ModeDrop
	case 'q':
		return domain.SimpleIntent(domain.ActionQuit), true
	}
	return domain.Intent{}, false
}

// handleMenu: буква a-z выбирает слот, Esc закрывает меню.
// Номер слота не проверяется: пустой слот отклонит сама сессия.
func (in *Input) handleMenu(ev *tcell.EventKey) (domain.Intent, bool) {
	if ev.Key() == tcell.KeyEscape {
		in.mode = ModeMap
		return domain.Intent{}, false
	}
	if ev.Key() != tcell.KeyRune {
		return domain.Intent{}, false
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return domain.Intent{}, false
	}

	slot := int(r - 'a')
	mode := in.mode
	in.mode = ModeMap
	if mode == ModeDrop {
		return domain.DropIntent(slot), true
	}
	return domain.UseIntent(slot), true
}
