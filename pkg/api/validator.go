package api

import (
	"errors"
	"fmt"
)

// MaxSlot - последний слот буквенного меню ('z').
const MaxSlot = 25

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Slot == nil && p.Letter == "" {
		return errors.New("slot or letter is required")
	}
	if p.Slot != nil && (*p.Slot < 0 || *p.Slot > MaxSlot) {
		return fmt.Errorf("slot %d is outside a..z", *p.Slot)
	}
	if p.Letter != "" && (len(p.Letter) != 1 || p.Letter[0] < 'a' || p.Letter[0] > 'z') {
		return fmt.Errorf("letter %q is not a menu key", p.Letter)
	}
	return nil
}

// Index возвращает номер слота из любого из двух полей.
func (p ItemPayload) Index() int {
	if p.Slot != nil {
		return *p.Slot
	}
	return int(p.Letter[0] - 'a')
}
