package agent

import (
	"context"

	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он видит ровно то же, что и человек: снимок api.ServerResponse,
// и по нему выбирает следующее намерение.
//
// Приоритеты хода:
//  1. Мертв - выходит.
//  2. Мало здоровья и есть зелье - лечится.
//  3. Виден монстр - бьет соседнего, издалека бьет молнией или идет к нему.
//  4. Предмет под ногами - поднимает, видимый предмет - идет к нему.
//  5. Иначе идет к ближайшей границе исследованной области.
//  6. Идти некуда - ждет.
type Bot struct {
	// HealBelow - доля здоровья, ниже которой бот пьет зелье.
	HealBelow float64
	// StrikeRange - с какого расстояния читать свиток молнии.
	StrikeRange int

	log *logrus.Entry
}

func NewBot() *Bot {
	return &Bot{
		HealBelow:   0.5,
		StrikeRange: engine.DefaultLightningRange,
		log:         logger.Log.WithField("component", "bot"),
	}
}

// Decide - это мозг бота. Чистая функция от снимка.
func (b *Bot) Decide(state api.ServerResponse) domain.Intent {
	wait := domain.SimpleIntent(domain.ActionWait)
	if state.Type != "UPDATE" || state.Done {
		return wait
	}
	if state.State == domain.StateDead.String() {
		return domain.SimpleIntent(domain.ActionQuit)
	}

	view := newLocalView(state)
	if view.me == nil {
		b.log.Warn("Self not found in snapshot, waiting")
		return wait
	}

	if in, ok := b.heal(state); ok {
		return in
	}
	if in, ok := b.fight(state, view); ok {
		return in
	}
	if in, ok := b.loot(state, view); ok {
		return in
	}
	if in, ok := view.stepTo(view.isFrontier); ok {
		return in
	}
	return wait
}

func (b *Bot) heal(state api.ServerResponse) (domain.Intent, bool) {
	p := state.Player
	if p == nil || p.Stats.MaxHP == 0 {
		return domain.Intent{}, false
	}
	if float64(p.Stats.HP) >= float64(p.Stats.MaxHP)*b.HealBelow {
		return domain.Intent{}, false
	}
	if slot, ok := findItem(p, enums.EffectHeal); ok {
		return domain.UseIntent(slot), true
	}
	return domain.Intent{}, false
}

func (b *Bot) fight(state api.ServerResponse, v *localView) (domain.Intent, bool) {
	target := v.nearest(v.monsters)
	if target == nil {
		return domain.Intent{}, false
	}
	me := v.mePos()

	if me.IsAdjacent(*target) {
		return domain.MoveIntent(sign(target.X-me.X), sign(target.Y-me.Y)), true
	}
	if state.Player != nil && me.DistanceTo(*target) <= float64(b.StrikeRange) {
		if slot, ok := findItem(state.Player, enums.EffectLightning); ok {
			return domain.UseIntent(slot), true
		}
	}
	return v.stepTo(func(p domain.Position) bool { return p == *target })
}

func (b *Bot) loot(state api.ServerResponse, v *localView) (domain.Intent, bool) {
	if state.Player == nil {
		return domain.Intent{}, false
	}
	inv := state.Player.Inventory
	if len(inv.Items) >= inv.MaxSlots || len(v.items) == 0 {
		return domain.Intent{}, false
	}

	me := v.mePos()
	for _, it := range v.items {
		if it == me {
			return domain.SimpleIntent(domain.ActionPickUp), true
		}
	}
	return v.stepTo(func(p domain.Position) bool {
		for _, it := range v.items {
			if it == p {
				return true
			}
		}
		return false
	})
}

// Run играет в инстансе через канал Hub. Инстанс сам шлет первый снимок,
// а каждое намерение дает ровно один следующий, поэтому бот отвечает
// на каждый полученный снимок.
// После maxTurns ходов (0 - без ограничения) бот выходит.
func (b *Bot) Run(ctx context.Context, inbox <-chan api.ServerResponse, submit func(domain.Intent) bool, maxTurns int) {
	b.log.Info("Agent started")
	defer b.log.Info("Agent shut down")

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-inbox:
			if !ok || state.Done {
				return
			}
			if state.Type == "ERROR" {
				b.log.WithField("error", state.Error).Warn("Server rejected command")
				continue
			}
			intent := b.Decide(state)
			if maxTurns > 0 && state.Turn >= maxTurns {
				intent = domain.SimpleIntent(domain.ActionQuit)
			}
			if !submit(intent) {
				b.log.Warn("Command queue full, dropping intent")
			}
		}
	}
}

// Play ведет синхронную сессию до выхода, смерти или лимита намерений.
// step вызывается после каждого Submit (nil - не нужен).
func (b *Bot) Play(s *engine.Session, maxIntents int, step func(engine.Outcome)) int {
	seq := 0
	n := 0
	for ; n < maxIntents && !s.Done(); n++ {
		snap := engine.BuildSnapshot(s, seq)
		seq = snap.LogSeq
		out := s.Submit(b.Decide(*snap))
		if step != nil {
			step(out)
		}
	}
	return n
}

func findItem(p *api.PlayerView, effect enums.ItemEffect) (int, bool) {
	for _, it := range p.Inventory.Items {
		if it.Effect == effect.String() {
			return it.Slot, true
		}
	}
	return 0, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
