package engine

import (
	"math/rand"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/engine/handlers/actions"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Outcome - итог одного Submit.
type Outcome struct {
	Action   domain.ActionType
	TookTurn bool
	State    domain.GameState
	Done     bool
	// Err - намерение отклонено (неверный слот, нулевой шаг). Состояние не менялось.
	Err error
}

// Session - одна партия: карта, сущности, лог и машина состояний.
// Не потокобезопасна: все вызовы должны идти из одной горутины
// (см. Instance для асинхронных клиентов).
type Session struct {
	cfg Config

	world    *domain.GameWorld
	entities *domain.EntityList
	player   *domain.Entity
	visible  domain.VisibleSet
	log      *domain.MessageLog
	rng      *rand.Rand

	state    domain.GameState
	done     bool
	fovDirty bool
	turn     int

	journal  *domain.ReplaySession
	handlers map[domain.ActionType]handlers.HandlerFunc
	ctx      *systems.TurnContext
	logEntry *logrus.Entry
}

// NewSession генерирует уровень из cfg.Seed и ставит игрока в точку появления.
func NewSession(cfg Config) *Session {
	rng := rand.New(rand.NewSource(cfg.Seed))
	level := dungeon.Generate(cfg.DungeonParams(), rng)
	return NewSessionFromLevel(cfg, level, rng)
}

// NewSessionFromLevel собирает сессию вокруг готового уровня.
// Удобно для тестов с ручной картой.
func NewSessionFromLevel(cfg Config, level dungeon.Level, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	s := &Session{
		cfg:      cfg,
		world:    level.World,
		entities: domain.NewEntityList(),
		log:      domain.NewMessageLog(cfg.LogLines),
		rng:      rng,
		state:    domain.StatePlaying,
		fovDirty: true,
		journal:  domain.NewReplaySession(cfg.Seed),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		logEntry: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"seed":      cfg.Seed,
		}),
	}

	s.populate(level)
	s.visible = domain.NewVisibleSet(s.world.Width, s.world.Height)
	s.ctx = &systems.TurnContext{
		World:    s.world,
		Entities: s.entities,
		Player:   s.player,
		Log:      s.log,
		Rng:      s.rng,
		OnDeath:  s.processDeath,
	}
	s.registerHandlers()
	s.recomputeFOV()

	s.logEntry.WithFields(logrus.Fields{
		"width":    s.world.Width,
		"height":   s.world.Height,
		"rooms":    len(level.Rooms),
		"entities": s.entities.Len(),
	}).Info("Session started.")
	return s
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(handlers.DirectionOf, actions.HandleMove)
	s.handlers[domain.ActionPickUp] = handlers.WithEmptyPayload(actions.HandlePickup)
	s.handlers[domain.ActionUse] = handlers.WithPayload(handlers.SlotOf, actions.HandleUse)
	s.handlers[domain.ActionDrop] = handlers.WithPayload(handlers.SlotOf, actions.HandleDrop)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// Submit выполняет один цикл: намерение игрока, затем (если ход потрачен)
// пересчёт поля зрения и ход монстров.
func (s *Session) Submit(in domain.Intent) Outcome {
	s.journal.Record(s.turn, in)
	out := Outcome{Action: in.Action}

	switch {
	case in.Action == domain.ActionQuit:
		s.done = true
		s.logEntry.WithField("turn", s.turn).Info("Session quit.")
	case s.done, s.state != domain.StatePlaying:
		// В Dead принимается только Quit
	default:
		out.TookTurn, out.Err = s.dispatch(in)
	}

	out.State = s.state
	out.Done = s.done
	return out
}

func (s *Session) dispatch(in domain.Intent) (bool, error) {
	handler, ok := s.handlers[in.Action]
	if !ok {
		return false, nil
	}

	result, err := handler(handlers.Context{Turn: s.ctx, Actor: s.player}, in)
	if err != nil {
		s.logEntry.WithFields(logrus.Fields{
			"action": in.Action.String(),
			"turn":   s.turn,
		}).WithError(err).Debug("Intent rejected.")
		return false, err
	}

	s.addLog(result)
	if result.FOVDirty {
		s.fovDirty = true
	}
	if !result.TookTurn {
		return false, nil
	}

	s.turn++
	if s.state == domain.StatePlaying {
		if s.fovDirty {
			s.recomputeFOV()
		}
		s.processAITurns()
	}
	return true, nil
}

func (s *Session) recomputeFOV() {
	s.visible = systems.ComputeVisibleTiles(s.player.Pos, s.world.IsTransparent,
		s.world.Width, s.world.Height, s.cfg.TorchRadius)
	systems.MarkExplored(s.world, s.visible)
	s.ctx.Visible = s.visible
	s.fovDirty = false
}

// --- Чтение состояния ---

func (s *Session) World() *domain.GameWorld { return s.world }
func (s *Session) Visible() domain.VisibleSet { return s.visible }
func (s *Session) Entities() *domain.EntityList { return s.entities }
func (s *Session) Player() *domain.Entity { return s.player }
func (s *Session) Log() *domain.MessageLog { return s.log }
func (s *Session) State() domain.GameState { return s.state }
func (s *Session) Done() bool { return s.done }
func (s *Session) Turn() int { return s.turn }
func (s *Session) Seed() int64 { return s.cfg.Seed }
func (s *Session) Journal() *domain.ReplaySession { return s.journal }
func (s *Session) Config() Config { return s.cfg }
