package domain

import "errors"

// Ошибки ядра. Ни одна из них не фатальна: движок ходов превращает их
// в no-op или в сообщение в логе.
var (
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrInventoryFull    = errors.New("inventory is full")
	ErrInvalidSelection = errors.New("invalid inventory selection")
	ErrZeroDirection    = errors.New("zero-length direction")
)
