package network

import (
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"
	"sync"
)

// Broadcaster занимается только рассылкой снимков подписчикам.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID инстанса -> личный канал клиента
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для клиента инстанса (человека или бота).
// Повторная регистрация закрывает старый канал.
func (b *Broadcaster) Register(id string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет сообщение конкретному ID (Unicast).
// Медленный клиент теряет снимок, цикл инстанса не блокируется.
func (b *Broadcaster) SendTo(id string, msg api.ServerResponse) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	select {
	case ch <- msg:
		return true
	default:
		logger.Log.WithField("subscriber", id).Warn("Hub: channel full, snapshot dropped")
		return false
	}
}

// Broadcast отправляет всем (служебные сообщения, остановка сервера)
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
