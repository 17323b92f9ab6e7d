package handlers

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/api"
)

// Direction - шаг на соседнюю клетку.
type Direction struct {
	Dx, Dy int
}

func (d Direction) Validate() error {
	if d.Dx == 0 && d.Dy == 0 {
		return domain.ErrZeroDirection
	}
	if d.Dx < -1 || d.Dx > 1 || d.Dy < -1 || d.Dy > 1 {
		return fmt.Errorf("step (%d,%d) too large", d.Dx, d.Dy)
	}
	return nil
}

// Slot - индекс в рюкзаке (0 = 'a').
type Slot int

func (s Slot) Validate() error {
	if s < 0 {
		return fmt.Errorf("slot %d: %w", int(s), domain.ErrInvalidSelection)
	}
	return nil
}

func DirectionOf(in domain.Intent) Direction { return Direction{Dx: in.Dx, Dy: in.Dy} }
func SlotOf(in domain.Intent) Slot           { return Slot(in.Slot) }

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (INIT, WAIT, PICKUP)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя извлечение данных из намерения и Validate.
func WithPayload[T any](extract func(domain.Intent) T, handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, in domain.Intent) (Result, error) {
		payload := extract(in)

		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Intent) (Result, error) {
		return handler(ctx)
	}
}
