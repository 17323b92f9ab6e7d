package systems

import (
	"fmt"

	"rogue-engine/internal/core/types"
	"rogue-engine/internal/core/types/enums"
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Brain - стратегия одного хода монстра. Новые стратегии добавляются
// сюда, движок ходов о них не знает.
type Brain interface {
	TakeTurn(ctx *TurnContext, monster *domain.Entity)
}

// BrainFor выбирает стратегию по компоненту ИИ. nil - ходить нечем.
func BrainFor(ai *domain.AIComponent) Brain {
	if ai == nil {
		return nil
	}
	switch ai.Kind {
	case enums.AIBasic:
		return basicMonster{}
	case enums.AIConfused:
		return confusedMonster{}
	default:
		return nil
	}
}

// basicMonster: если видит игрока (игрок видит его), идёт навстречу,
// а вплотную бьёт, пока игрок жив.
type basicMonster struct{}

func (basicMonster) TakeTurn(ctx *TurnContext, monster *domain.Entity) {
	if !ctx.Visible.Has(monster.Pos.X, monster.Pos.Y) {
		return
	}
	player := ctx.Player
	dist := monster.Pos.DistanceTo(player.Pos)

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    monster.ID,
		"npc_name":  monster.Name,
		"distance":  dist,
	})

	if dist >= 2 {
		moved := MoveToward(ctx.World, ctx.Entities.All(), monster, player.Pos.X, player.Pos.Y)
		aiLogger.WithField("moved", moved).Debug("Chasing player.")
		return
	}
	if player.CanFight() {
		aiLogger.Debug("Attacking player.")
		ctx.Melee(monster, player)
	}
}

// confusedMonster бредёт в случайную сторону, пока не кончится конфузия.
type confusedMonster struct{}

func (confusedMonster) TakeTurn(ctx *TurnContext, monster *domain.Entity) {
	dx := ctx.Rng.Intn(3) - 1
	dy := ctx.Rng.Intn(3) - 1
	Move(ctx.World, ctx.Entities.All(), monster, dx, dy)

	if monster.AI.TickConfusion() {
		ctx.Message(fmt.Sprintf("The %s is no longer confused!", monster.Name), types.ColorDarkRed, domain.MsgInfo)
	}
}

// RunMonsterTurns даёт каждому обладателю ИИ один ход в порядке списка.
// Обход идёт по снимку: смерти и перестановки внутри прохода не сбивают порядок.
// Сущность, потерявшая ИИ до своей очереди, пропускается. Если stop вернул
// true после чьего-то хода, проход прерывается.
func RunMonsterTurns(ctx *TurnContext, stop func() bool) {
	for _, e := range ctx.Entities.Snapshot() {
		if e == ctx.Player {
			continue
		}
		brain := BrainFor(e.AI)
		if brain == nil {
			continue
		}
		brain.TakeTurn(ctx, e)
		if stop != nil && stop() {
			return
		}
	}
}
