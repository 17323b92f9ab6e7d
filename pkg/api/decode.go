package api

import (
	"encoding/json"
	"fmt"

	"rogue-engine/internal/domain"
)

// DecodeIntent переводит команду клиента в доменное намерение.
// Неизвестное действие становится NoOp без ошибки; битый или
// невалидный payload возвращает ошибку.
func DecodeIntent(cmd ClientCommand) (domain.Intent, error) {
	action := domain.ParseAction(cmd.Action)

	switch action {
	case domain.ActionMove:
		p, err := decodePayload[DirectionPayload](cmd.Payload)
		if err != nil {
			return domain.Intent{}, fmt.Errorf("%s: %w", action, err)
		}
		return domain.MoveIntent(p.Dx, p.Dy), nil

	case domain.ActionUse, domain.ActionDrop:
		p, err := decodePayload[ItemPayload](cmd.Payload)
		if err != nil {
			return domain.Intent{}, fmt.Errorf("%s: %w", action, err)
		}
		return domain.Intent{Action: action, Slot: p.Index()}, nil

	default:
		return domain.SimpleIntent(action), nil
	}
}

// decodePayload берет на себя Unmarshal и Validate.
func decodePayload[T any](raw json.RawMessage) (T, error) {
	var payload T

	if len(raw) == 0 {
		return payload, fmt.Errorf("payload is required")
	}

	// 1. Распаковка JSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("invalid payload format: %w", err)
	}

	// 2. Автоматическая валидация
	if v, ok := any(payload).(Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("validation failed: %w", err)
		}
	}
	return payload, nil
}
