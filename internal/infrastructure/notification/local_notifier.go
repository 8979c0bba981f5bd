package notification

import (
	"context"
	"sync"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

const subscriberBuffer = 32

// LocalNotifier delivers events to subscribers of the same process. It is used
// when no redis address is configured.
type LocalNotifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int64]map[int]chan entities.Event
}

var _ interfaces.INotifier = (*LocalNotifier)(nil)

func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{subs: map[int64]map[int]chan entities.Event{}}
}

// Publish never blocks; a full subscriber buffer drops the event.
func (n *LocalNotifier) Publish(_ context.Context, userID int64, event entities.Event) error {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.subs[userID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (n *LocalNotifier) Subscribe(_ context.Context, userID int64) (<-chan entities.Event, func(), error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	ch := make(chan entities.Event, subscriberBuffer)
	if n.subs[userID] == nil {
		n.subs[userID] = map[int]chan entities.Event{}
	}
	n.subs[userID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[userID], id)
			if len(n.subs[userID]) == 0 {
				delete(n.subs, userID)
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}
