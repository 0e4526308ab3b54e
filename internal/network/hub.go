package network

import (
	"sync"

	"github.com/th3w1zard1/Andastra-sub005/pkg/api"
)

// Broadcaster занимается только рассылкой кадров наблюдателям
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID наблюдателя -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал наблюдателя
func (b *Broadcaster) Register(watcherID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[watcherID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[watcherID] = ch
	return ch
}

// Unregister удаляет наблюдателя
func (b *Broadcaster) Unregister(watcherID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[watcherID]; ok {
		close(ch)
		delete(b.subscribers, watcherID)
	}
}

// Broadcast отправляет кадр всем наблюдателям.
// Переполненный канал молча пропускает кадр: медленный наблюдатель
// не тормозит симуляцию.
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

// SubscriberCount возвращает количество активных наблюдателей.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
