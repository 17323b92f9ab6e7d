package systems

import (
	"fmt"
	"strings"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult - исход одного удара.
type AttackResult struct {
	Attacker *domain.Entity
	Defender *domain.Entity
	Damage   int
	NoEffect bool
	// Killed выставляется только тем ударом, который убил цель.
	Killed bool
}

// Message формирует строку для игрового лога.
func (r AttackResult) Message() string {
	if r.NoEffect {
		return fmt.Sprintf("%s attacks %s but it has no effect!", capitalize(r.Attacker.Name), r.Defender.Name)
	}
	return fmt.Sprintf("%s attacks %s for %d hit points.", capitalize(r.Attacker.Name), r.Defender.Name, r.Damage)
}

// Attack считает урон как power - defense. Положительный урон снимает HP,
// иначе удар без эффекта. Не допускать ударов по трупам - забота вызывающего.
func Attack(attacker, defender *domain.Entity) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     defender.ID,
		"target_name":   defender.Name,
	})

	res := AttackResult{Attacker: attacker, Defender: defender}

	if attacker.Fighter == nil || defender.Fighter == nil {
		combatLogger.Warn("Attack ignored: missing fighter component.")
		res.NoEffect = true
		return res
	}

	damage := attacker.Fighter.Power - defender.Fighter.Defense
	if damage <= 0 {
		res.NoEffect = true
		combatLogger.WithField("damage", damage).Debug("Attack had no effect.")
		return res
	}

	hpBefore := defender.Fighter.HP
	res.Damage = damage
	res.Killed = defender.Fighter.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"power":       attacker.Fighter.Power,
		"defense":     defender.Fighter.Defense,
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    defender.Fighter.HP,
		"target_died": res.Killed,
	}).Info("Attack resolved.")

	return res
}

// DeathEvent - результат превращения бойца в труп.
type DeathEvent struct {
	Entity *domain.Entity
	Effect enums.DeathEffect
	// Name - имя до переименования в "remains of ...".
	Name string
}

func (d DeathEvent) Message() string {
	if d.Effect == enums.DeathPlayer {
		return "You died!"
	}
	return fmt.Sprintf("%s is dead!", capitalize(d.Name))
}

var corpseGlyph = types.MakeGlyph(types.ColorDarkRed, '%')

// ApplyDeath выполняет превращение, заданное OnDeath бойца.
//
// DeathCorpse: символ трупа, проход свободен, бой и ИИ снимаются,
// имя "remains of X", сущность уходит в начало списка отрисовки.
// DeathPlayer: только символ трупа; боевой компонент остаётся (с Dead=true),
// чтобы HUD продолжал показывать здоровье.
func ApplyDeath(entities *domain.EntityList, e *domain.Entity) DeathEvent {
	ev := DeathEvent{Entity: e, Name: e.Name, Effect: enums.DeathCorpse}
	if e.Fighter != nil {
		ev.Effect = e.Fighter.OnDeath
	}

	if e.Render == nil {
		e.Render = &domain.RenderComponent{}
	}
	e.Render.Glyph = corpseGlyph

	switch ev.Effect {
	case enums.DeathPlayer:
		if e.Fighter != nil {
			e.Fighter.Dead = true
		}
	default:
		e.Blocks = false
		e.Fighter = nil
		e.AI = nil
		e.Kind = enums.EntityKindCorpse
		e.Name = "remains of " + e.Name
		if entities != nil {
			entities.SendToBack(e.ID)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": e.ID,
		"name":      ev.Name,
		"effect":    ev.Effect.String(),
	}).Info("Death transition applied.")

	return ev
}

// Melee - удар с записью в лог и обработкой смерти.
func (c *TurnContext) Melee(attacker, defender *domain.Entity) AttackResult {
	res := Attack(attacker, defender)
	c.Message(res.Message(), types.ColorWhite, domain.MsgCombat)
	if res.Killed {
		c.kill(defender)
	}
	return res
}

// Damage наносит урон не от удара (магия). Возвращает true, если цель погибла.
func (c *TurnContext) Damage(target *domain.Entity, amount int) bool {
	if target.Fighter == nil {
		return false
	}
	if target.Fighter.TakeDamage(amount) {
		c.kill(target)
		return true
	}
	return false
}

func (c *TurnContext) kill(e *domain.Entity) {
	ev := ApplyDeath(c.Entities, e)
	color := types.ColorOrange
	if ev.Effect == enums.DeathPlayer {
		color = types.ColorDarkRed
	}
	c.Message(ev.Message(), color, domain.MsgDeath)
	if c.OnDeath != nil {
		c.OnDeath(ev)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
