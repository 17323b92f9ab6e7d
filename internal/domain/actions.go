package domain

import "strings"

// ActionType - внутренний числовой идентификатор намерения игрока
type ActionType uint8

const (
	// ActionNoOp - нераспознанный ввод, ход не тратится.
	ActionNoOp ActionType = iota
	ActionInit
	ActionMove
	ActionPickUp
	ActionUse
	ActionDrop
	ActionWait
	ActionQuit
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"NOOP":   ActionNoOp,
	"INIT":   ActionInit,
	"MOVE":   ActionMove,
	"PICKUP": ActionPickUp,
	"USE":    ActionUse,
	"DROP":   ActionDrop,
	"WAIT":   ActionWait,
	"QUIT":   ActionQuit,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionNoOp:   "NOOP",
	ActionInit:   "INIT",
	ActionMove:   "MOVE",
	ActionPickUp: "PICKUP",
	ActionUse:    "USE",
	ActionDrop:   "DROP",
	ActionWait:   "WAIT",
	ActionQuit:   "QUIT",
}

// ParseAction конвертирует строку из JSON в ActionType.
// Всё нераспознанное становится NoOp.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionNoOp
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Intent - одно внешнее намерение на цикл хода.
type Intent struct {
	Action ActionType `json:"action"`
	Dx     int        `json:"dx,omitempty"`
	Dy     int        `json:"dy,omitempty"`
	Slot   int        `json:"slot,omitempty"`
}

func MoveIntent(dx, dy int) Intent {
	return Intent{Action: ActionMove, Dx: dx, Dy: dy}
}

func UseIntent(slot int) Intent {
	return Intent{Action: ActionUse, Slot: slot}
}

func DropIntent(slot int) Intent {
	return Intent{Action: ActionDrop, Slot: slot}
}

func SimpleIntent(a ActionType) Intent {
	return Intent{Action: a}
}
