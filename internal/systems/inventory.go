package systems

import (
	"fmt"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UseOutcome - итог применения предмета.
type UseOutcome uint8

const (
	// UseConsumed: эффект сработал, предмет израсходован.
	UseConsumed UseOutcome = iota
	// UseCancelled: эффект не сработал, предмет остаётся в рюкзаке.
	UseCancelled
)

func (o UseOutcome) String() string {
	if o == UseCancelled {
		return "CANCELLED"
	}
	return "CONSUMED"
}

// --- PICKUP ---

// ItemAt возвращает первый предмет в клетке в порядке списка.
func ItemAt(entities []*domain.Entity, x, y int) *domain.Entity {
	for _, e := range entities {
		if e.Item != nil && e.IsAt(x, y) {
			return e
		}
	}
	return nil
}

// PickUp переносит предмет с карты в рюкзак. При полном рюкзаке
// возвращает ErrInventoryFull и ничего не меняет.
func PickUp(entities *domain.EntityList, actor, item *domain.Entity) error {
	if actor.Inventory == nil {
		return fmt.Errorf("%s cannot carry items: %w", actor.Name, domain.ErrInventoryFull)
	}
	if item.Item == nil {
		return fmt.Errorf("%s is not an item: %w", item.Name, domain.ErrInvalidSelection)
	}
	if err := actor.Inventory.AddItem(item); err != nil {
		return err
	}
	entities.Remove(item.ID)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"item_id":   item.ID,
		"item_name": item.Name,
		"slots":     actor.Inventory.Len(),
	}).Debug("Item picked up.")
	return nil
}

// --- DROP ---

// Drop кладёт предмет из слота под ноги владельцу, под всех остальных.
func Drop(entities *domain.EntityList, actor *domain.Entity, slot int) (*domain.Entity, error) {
	item, err := actor.Inventory.RemoveAt(slot)
	if err != nil {
		return nil, err
	}
	item.Pos = actor.Pos
	entities.Place(item)
	entities.SendToBack(item.ID)
	return item, nil
}

// --- USE ---

// UseItem применяет предмет из слота. Отменённый эффект оставляет предмет
// в рюкзаке, любой другой исход его расходует.
func UseItem(ctx *TurnContext, actor *domain.Entity, slot int) (UseOutcome, error) {
	item, err := actor.Inventory.At(slot)
	if err != nil {
		return UseCancelled, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"item_name": item.Name,
		"slot":      slot,
	})

	outcome := UseCancelled
	if item.Item == nil || item.Item.Effect == enums.EffectNone {
		ctx.Message(fmt.Sprintf("The %s cannot be used.", item.Name), types.ColorWhite, domain.MsgWarning)
	} else {
		outcome = applyEffect(ctx, actor, item.Item)
	}

	if outcome != UseCancelled {
		actor.Inventory.RemoveItem(item.ID)
	}

	log.WithField("outcome", outcome.String()).Info("Item used.")
	return outcome, nil
}

func applyEffect(ctx *TurnContext, actor *domain.Entity, props *domain.ItemComponent) UseOutcome {
	switch props.Effect {
	case enums.EffectHeal:
		if actor.Fighter == nil || actor.Fighter.AtFullHealth() {
			ctx.Message("You are already at full health.", types.ColorViolet, domain.MsgWarning)
			return UseCancelled
		}
		actor.Fighter.Heal(props.Amount)
		ctx.Message("Your wounds start to feel better!", types.ColorViolet, domain.MsgInfo)
		return UseConsumed

	case enums.EffectLightning:
		target := ClosestMonster(ctx, actor, props.Range)
		if target == nil {
			ctx.Message("No enemy is close enough to strike.", types.ColorDarkRed, domain.MsgWarning)
			return UseCancelled
		}
		ctx.Message(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
			target.Name, props.Amount), types.ColorLightBlue, domain.MsgCombat)
		ctx.Damage(target, props.Amount)
		return UseConsumed

	case enums.EffectConfuse:
		target := ClosestMonster(ctx, actor, props.Range)
		if target == nil {
			ctx.Message("No enemy is close enough to confuse.", types.ColorDarkRed, domain.MsgWarning)
			return UseCancelled
		}
		target.AI.Confuse(props.Turns)
		ctx.Message(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", target.Name),
			types.ColorGreen, domain.MsgInfo)
		return UseConsumed
	}
	return UseCancelled
}

// ClosestMonster ищет ближайшего видимого живого монстра с ИИ в пределах maxRange.
// При равных расстояниях побеждает тот, кто раньше в списке.
func ClosestMonster(ctx *TurnContext, from *domain.Entity, maxRange int) *domain.Entity {
	var closest *domain.Entity
	best := maxRange*maxRange + 1
	for _, e := range ctx.Entities.All() {
		if e == from || e.AI == nil || !e.CanFight() {
			continue
		}
		if !ctx.Visible.Has(e.Pos.X, e.Pos.Y) {
			continue
		}
		if d := from.Pos.DistanceSquaredTo(e.Pos); d < best {
			best = d
			closest = e
		}
	}
	return closest
}
