package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"rogue-engine/internal/infrastructure/storage"
	"rogue-engine/internal/network"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"
	"rogue-engine/pkg/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownInstance = errors.New("unknown instance")
	ErrQueueFull       = errors.New("command queue is full")
)

// GameService управляет всеми запущенными инстансами.
// Каждое подключение получает свою партию; сид партии = Seed базового
// конфига + порядковый номер инстанса.
type GameService struct {
	Hub *network.Broadcaster

	base    Config
	replays *storage.ReplayService // nil - журналы не сохраняются

	mu        sync.RWMutex
	instances map[string]*instanceRecord
	created   int64
	wg        sync.WaitGroup

	log *logrus.Entry
}

type instanceRecord struct {
	inst   *Instance
	cancel context.CancelFunc
}

func NewService(base Config, hub *network.Broadcaster, replays *storage.ReplayService) *GameService {
	return &GameService{
		Hub:       hub,
		base:      base,
		replays:   replays,
		instances: make(map[string]*instanceRecord),
		log:       logger.Log.WithField("component", "game_service"),
	}
}

// CreateInstance создает новую партию, подписывает её клиента на Hub
// и запускает цикл инстанса. Канал закрывается, когда партия завершена
// или удалена.
func (s *GameService) CreateInstance(parent context.Context) (*Instance, chan api.ServerResponse) {
	s.mu.Lock()
	cfg := s.base
	cfg.Seed = s.base.Seed + s.created
	s.created++

	id := utils.GenerateID()
	inst := NewInstance(id, cfg, s.Hub)
	ctx, cancel := context.WithCancel(parent)
	s.instances[id] = &instanceRecord{inst: inst, cancel: cancel}
	s.mu.Unlock()

	// Подписка до старта: первый снимок не должен потеряться
	updates := s.Hub.Register(id)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		inst.Run(ctx)
		s.finish(inst)
	}()

	s.log.WithFields(logrus.Fields{
		"instance_id": id,
		"seed":        cfg.Seed,
	}).Info("Instance created")
	return inst, updates
}

// finish вызывается после выхода из Run: цикл больше не трогает сессию.
func (s *GameService) finish(inst *Instance) {
	s.mu.Lock()
	if rec, ok := s.instances[inst.ID]; ok {
		rec.cancel()
		delete(s.instances, inst.ID)
	}
	s.mu.Unlock()

	s.Hub.Unregister(inst.ID)

	if s.replays == nil {
		return
	}
	path, err := s.replays.Save(inst.Journal())
	if err != nil {
		s.log.WithError(err).WithField("instance_id", inst.ID).Error("Failed to save replay")
		return
	}
	s.log.WithFields(logrus.Fields{
		"instance_id": inst.ID,
		"path":        path,
	}).Info("Replay saved")
}

func (s *GameService) Get(id string) (*Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.instances[id]
	if !ok {
		return nil, false
	}
	return rec.inst, true
}

// Remove останавливает инстанс (клиент отключился).
func (s *GameService) Remove(id string) {
	s.mu.RLock()
	rec, ok := s.instances[id]
	s.mu.RUnlock()
	if ok {
		rec.cancel()
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Ошибка разбора уходит клиенту как ERROR и не доходит до сессии.
func (s *GameService) ProcessCommand(token string, cmd api.ClientCommand) error {
	inst, ok := s.Get(token)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownInstance, token)
	}

	intent, err := api.DecodeIntent(cmd)
	if err != nil {
		s.Hub.SendTo(token, errorResponse(err))
		return err
	}

	if !inst.Submit(intent) {
		s.Hub.SendTo(token, errorResponse(ErrQueueFull))
		return ErrQueueFull
	}
	return nil
}

// Summaries возвращает сводки всех живых инстансов, отсортированные по ID.
func (s *GameService) Summaries() []InstanceSummary {
	s.mu.RLock()
	out := make([]InstanceSummary, 0, len(s.instances))
	for _, rec := range s.instances {
		out = append(out, rec.inst.Summary())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *GameService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// Shutdown останавливает все инстансы и ждет, пока их журналы сохранятся.
func (s *GameService) Shutdown() {
	s.mu.RLock()
	for _, rec := range s.instances {
		rec.cancel()
	}
	s.mu.RUnlock()
	s.wg.Wait()
}
