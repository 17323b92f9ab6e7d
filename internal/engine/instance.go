package engine

import (
	"context"
	"sync"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/network"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Instance представляет собой одну запущенную партию для асинхронного клиента.
// Сессией владеет ровно одна горутина (Run); следующая команда читается
// только после того, как предыдущий цикл, включая ходы монстров, завершён.
type Instance struct {
	ID string

	CommandChan chan domain.Intent

	session *Session
	hub     *network.Broadcaster
	logSeq  int

	mu      sync.RWMutex
	summary InstanceSummary
}

// InstanceSummary - потокобезопасная сводка для отладочных эндпоинтов.
type InstanceSummary struct {
	ID      string `json:"id"`
	Seed    int64  `json:"seed"`
	Turn    int    `json:"turn"`
	State   string `json:"state"`
	Done    bool   `json:"done"`
	PlayerX int    `json:"playerX"`
	PlayerY int    `json:"playerY"`
	HP      int    `json:"hp"`
}

func NewInstance(id string, cfg Config, hub *network.Broadcaster) *Instance {
	i := &Instance{
		ID:          id,
		CommandChan: make(chan domain.Intent, 100),
		session:     NewSession(cfg),
		hub:         hub,
	}
	i.refreshSummary()
	return i
}

// Run запускает цикл ЭТОГО инстанса. Выходит по QUIT или отмене ctx.
func (i *Instance) Run(ctx context.Context) {
	log := logger.Log.WithFields(logrus.Fields{
		"component":   "instance",
		"instance_id": i.ID,
	})
	log.Info("Instance loop started")

	// Первый снимок: клиенту нужно что-то нарисовать до первого хода
	i.publish()

	for {
		select {
		case <-ctx.Done():
			log.Info("Instance loop cancelled")
			return

		case intent := <-i.CommandChan:
			out := i.session.Submit(intent)
			if out.Err != nil {
				log.WithError(out.Err).WithField("action", intent.Action.String()).Debug("Intent rejected")
			}
			i.refreshSummary()
			i.publish()

			if out.Done {
				log.WithField("turn", i.session.Turn()).Info("Instance finished")
				return
			}
		}
	}
}

// Submit ставит намерение в очередь. false - очередь переполнена.
func (i *Instance) Submit(intent domain.Intent) bool {
	select {
	case i.CommandChan <- intent:
		return true
	default:
		return false
	}
}

func (i *Instance) publish() {
	if i.hub == nil {
		return
	}
	snapshot := BuildSnapshot(i.session, i.logSeq)
	snapshot.Token = i.ID
	i.logSeq = snapshot.LogSeq
	i.hub.SendTo(i.ID, *snapshot)
}

func (i *Instance) refreshSummary() {
	s := i.session
	p := s.Player()

	sum := InstanceSummary{
		ID:      i.ID,
		Seed:    s.Seed(),
		Turn:    s.Turn(),
		State:   s.State().String(),
		Done:    s.Done(),
		PlayerX: p.Pos.X,
		PlayerY: p.Pos.Y,
	}
	if p.Fighter != nil {
		sum.HP = p.Fighter.HP
	}

	i.mu.Lock()
	i.summary = sum
	i.mu.Unlock()
}

// Summary можно вызывать из любой горутины.
func (i *Instance) Summary() InstanceSummary {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.summary
}

// Journal - журнал партии. Читать только после выхода из Run.
func (i *Instance) Journal() *domain.ReplaySession {
	return i.session.Journal()
}

// errorResponse - ответ клиенту на команду, которую не удалось разобрать.
func errorResponse(err error) api.ServerResponse {
	return api.ServerResponse{Type: "ERROR", Error: err.Error()}
}
