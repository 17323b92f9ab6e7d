package systems

import (
	"math/rand"

	"rogue-engine/internal/domain"
)

// TurnContext - всё, что системам нужно внутри одного цикла хода.
// Собирается сессией; системы мутируют мир только через него.
type TurnContext struct {
	World    *domain.GameWorld
	Entities *domain.EntityList
	Player   *domain.Entity
	Visible  domain.VisibleSet
	Log      *domain.MessageLog
	Rng      *rand.Rand

	// OnDeath вызывается после превращения в труп. Сессия ловит здесь
	// смерть игрока и переходит в Dead.
	OnDeath func(DeathEvent)
}

// Message пишет строку в игровой лог, если он есть.
func (c *TurnContext) Message(text string, color uint32, typ domain.MessageType) {
	if c.Log != nil {
		c.Log.Add(text, color, typ)
	}
}
