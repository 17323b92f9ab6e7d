package engine

import (
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AttackAdjacentMonster(t *testing.T) {
	// 10x10, комната 1..8, центр (4,4). Орк справа от игрока.
	orc := dungeon.Orc.Spawn(domain.Position{X: 5, Y: 4})
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10, orc), nil)

	player := s.Player()
	require.Equal(t, domain.Position{X: 4, Y: 4}, player.Pos)
	require.Equal(t, 30, player.Fighter.HP)
	player.Fighter.Power = 3

	out := s.Submit(domain.MoveIntent(1, 0))

	require.NoError(t, out.Err)
	assert.True(t, out.TookTurn)
	assert.Equal(t, domain.StatePlaying, out.State)
	assert.Equal(t, 7, orc.Fighter.HP)
	assert.Equal(t, domain.Position{X: 4, Y: 4}, player.Pos, "attack must not move the player")
	assert.Contains(t, logTexts(s), "Player attacks orc for 3 hit points.")

	// Ответный удар орка: 3 - 2 = 1
	assert.Contains(t, logTexts(s), "Orc attacks player for 1 hit points.")
	assert.Equal(t, 29, player.Fighter.HP)
	assert.Equal(t, 1, s.Turn())
}

func TestSession_TurnAccounting(t *testing.T) {
	tests := []struct {
		name     string
		intent   domain.Intent
		tookTurn bool
		wantErr  error
		lastMsg  string
	}{
		{"wall bump takes a turn", domain.MoveIntent(-1, -1), true, nil, ""},
		{"wait takes a turn", domain.SimpleIntent(domain.ActionWait), true, nil, ""},
		{"pickup with nothing here", domain.SimpleIntent(domain.ActionPickUp), false, nil, "There is nothing here to pick up."},
		{"zero direction rejected", domain.MoveIntent(0, 0), false, domain.ErrZeroDirection, ""},
		{"invalid slot rejected", domain.UseIntent(3), false, domain.ErrInvalidSelection, ""},
		{"drop from empty inventory", domain.DropIntent(0), false, domain.ErrInvalidSelection, ""},
		{"noop is free", domain.SimpleIntent(domain.ActionNoOp), false, nil, ""},
		{"init greets", domain.SimpleIntent(domain.ActionInit), false, nil,
			"Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := oneRoomLevel(10)
			level.Spawn = domain.Position{X: 1, Y: 1}
			s := NewSessionFromLevel(testConfig(), level, nil)

			out := s.Submit(tt.intent)

			if tt.wantErr != nil {
				assert.ErrorIs(t, out.Err, tt.wantErr)
			} else {
				assert.NoError(t, out.Err)
			}
			assert.Equal(t, tt.tookTurn, out.TookTurn)
			if tt.tookTurn {
				assert.Equal(t, 1, s.Turn())
			} else {
				assert.Equal(t, 0, s.Turn())
			}
			assert.Equal(t, domain.Position{X: 1, Y: 1}, s.Player().Pos)
			assert.Len(t, s.Journal().Actions, 1, "every intent is journaled")

			if tt.lastMsg != "" {
				last, ok := s.Log().Last()
				require.True(t, ok)
				assert.Equal(t, tt.lastMsg, last.Text)
			}
		})
	}
}

func TestSession_CancelledUseStillTakesTurn(t *testing.T) {
	potion := dungeon.HealingPotion.Spawn(domain.Position{X: 4, Y: 4})
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10, potion), nil)
	player := s.Player()

	out := s.Submit(domain.SimpleIntent(domain.ActionPickUp))
	require.True(t, out.TookTurn)
	require.Equal(t, 1, player.Inventory.Len())
	assert.False(t, s.Entities().OnMap(potion.ID))

	out = s.Submit(domain.UseIntent(0))
	require.NoError(t, out.Err)
	assert.True(t, out.TookTurn)
	assert.Equal(t, 2, s.Turn())
	assert.Equal(t, 1, player.Inventory.Len(), "cancelled heal keeps the potion")
	assert.Equal(t, 30, player.Fighter.HP)

	last, _ := s.Log().Last()
	assert.Equal(t, "You are already at full health.", last.Text)

	// Ранен: зелье срабатывает и тратится
	player.Fighter.HP = 20
	out = s.Submit(domain.UseIntent(0))
	assert.True(t, out.TookTurn)
	assert.Equal(t, 24, player.Fighter.HP)
	assert.Equal(t, 0, player.Inventory.Len())
}

func TestSession_DropPutsItemUnderPlayer(t *testing.T) {
	scroll := dungeon.LightningScroll.Spawn(domain.Position{X: 4, Y: 4})
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10, scroll), nil)

	require.True(t, s.Submit(domain.SimpleIntent(domain.ActionPickUp)).TookTurn)
	require.True(t, s.Submit(domain.MoveIntent(1, 0)).TookTurn)

	out := s.Submit(domain.DropIntent(0))
	require.NoError(t, out.Err)
	assert.True(t, out.TookTurn)
	assert.True(t, s.Entities().OnMap(scroll.ID))
	assert.Equal(t, domain.Position{X: 5, Y: 4}, scroll.Pos)

	last, _ := s.Log().Last()
	assert.Equal(t, "You dropped a scroll of lightning bolt.", last.Text)
}

func TestSession_DeadAcceptsOnlyQuit(t *testing.T) {
	orc := dungeon.Orc.Spawn(domain.Position{X: 5, Y: 4})
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10, orc), nil)
	player := s.Player()
	player.Fighter.HP = 1

	out := s.Submit(domain.SimpleIntent(domain.ActionWait))
	require.True(t, out.TookTurn)
	require.Equal(t, domain.StateDead, out.State)
	assert.True(t, player.Fighter.Dead)

	last, _ := s.Log().Last()
	assert.Equal(t, "You died!", last.Text)
	logLen := s.Log().Seq()

	for _, in := range []domain.Intent{
		domain.MoveIntent(-1, 0),
		domain.SimpleIntent(domain.ActionWait),
		domain.SimpleIntent(domain.ActionInit),
		domain.SimpleIntent(domain.ActionPickUp),
	} {
		out = s.Submit(in)
		assert.False(t, out.TookTurn, in.Action.String())
		assert.Equal(t, domain.StateDead, out.State)
		assert.False(t, out.Done)
	}
	assert.Equal(t, 1, s.Turn())
	assert.Equal(t, domain.Position{X: 4, Y: 4}, player.Pos)
	assert.Equal(t, logLen, s.Log().Seq(), "dead session writes nothing")

	out = s.Submit(domain.SimpleIntent(domain.ActionQuit))
	assert.True(t, out.Done)
	assert.True(t, s.Done())
}

func TestSession_QuitWhilePlaying(t *testing.T) {
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10), nil)

	out := s.Submit(domain.SimpleIntent(domain.ActionQuit))
	assert.True(t, out.Done)
	assert.False(t, out.TookTurn)
	assert.Equal(t, domain.StatePlaying, out.State)

	// После выхода сессия ничего не делает
	out = s.Submit(domain.SimpleIntent(domain.ActionWait))
	assert.False(t, out.TookTurn)
	assert.Equal(t, 0, s.Turn())
}

func TestSession_MoveRevealsMap(t *testing.T) {
	s := NewSessionFromLevel(testConfig(), oneRoomLevel(10), nil)
	before := s.World().ExploredCount()
	require.Positive(t, before)
	require.True(t, s.Visible().Has(4, 4))

	out := s.Submit(domain.MoveIntent(1, 1))
	require.True(t, out.TookTurn)
	assert.Equal(t, domain.Position{X: 5, Y: 5}, s.Player().Pos)
	assert.True(t, s.Visible().Has(5, 5))
	assert.GreaterOrEqual(t, s.World().ExploredCount(), before)
}

func TestReplay_Deterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 12345
	cfg.Width, cfg.Height = 50, 30

	s := NewSession(cfg)
	intents := []domain.Intent{
		domain.SimpleIntent(domain.ActionInit),
		domain.MoveIntent(1, 0), domain.MoveIntent(1, 0), domain.MoveIntent(0, 1),
		domain.SimpleIntent(domain.ActionPickUp),
		domain.MoveIntent(-1, 1), domain.MoveIntent(-1, 0),
		domain.UseIntent(0),
		domain.SimpleIntent(domain.ActionWait),
		domain.MoveIntent(0, -1), domain.MoveIntent(1, -1),
		domain.DropIntent(0),
		domain.MoveIntent(0, 0),
	}
	for _, in := range intents {
		s.Submit(in)
	}

	r := Replay(cfg, s.Journal())

	assert.Equal(t, s.Turn(), r.Turn())
	assert.Equal(t, s.State(), r.State())
	assert.Equal(t, s.Player().Pos, r.Player().Pos)
	assert.Equal(t, s.Player().Fighter.HP, r.Player().Fighter.HP)
	assert.Equal(t, logTexts(s), logTexts(r))
	assert.Equal(t, s.World().ExploredCount(), r.World().ExploredCount())
	assert.Equal(t, len(s.Journal().Actions), len(r.Journal().Actions))

	require.Equal(t, s.Entities().Len(), r.Entities().Len())
	for i, e := range s.Entities().All() {
		other := r.Entities().All()[i]
		assert.Equal(t, e.Name, other.Name)
		assert.Equal(t, e.Pos, other.Pos)
	}
}

func TestNewSession_SameSeedSameDungeon(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 99

	a, b := NewSession(cfg), NewSession(cfg)
	assert.Equal(t, a.Player().Pos, b.Player().Pos)
	assert.Equal(t, a.World().Map, b.World().Map)
	assert.Equal(t, a.Entities().Len(), b.Entities().Len())
}
