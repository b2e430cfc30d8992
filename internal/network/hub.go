package network

import (
	"sync"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ActorID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для актора
func (b *Broadcaster) Register(actorID domain.ActorID) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[actorID.String()]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[actorID.String()] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(actorID domain.ActorID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[actorID.String()]; ok {
		close(ch)
		delete(b.subscribers, actorID.String())
	}
}

// SendTo отправляет сообщение конкретному ID (Unicast)
func (b *Broadcaster) SendTo(actorID domain.ActorID, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[actorID.String()]; ok {
		select {
		case ch <- msg:
		default:
			// Переполненный канал медленного клиента не должен стопорить цикл
		}
	}
}

// Broadcast отправляет всем (нужен для зрителей/игроков)
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

// HasSubscriber проверяет, управляется ли актор кем-то
func (b *Broadcaster) HasSubscriber(actorID domain.ActorID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[actorID.String()]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
