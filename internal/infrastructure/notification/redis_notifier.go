package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const channelPrefix = "coletaverde:events:user:"

func userChannel(userID int64) string {
	return fmt.Sprintf("%s%d", channelPrefix, userID)
}

// RedisNotifier fans events out through redis pub/sub so every API instance
// can serve a user's event stream.
type RedisNotifier struct {
	rdb    *redis.Client
	logger logrus.FieldLogger
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(rdb *redis.Client, logger logrus.FieldLogger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, logger: logger.WithField("module", "notifier")}
}

func (n *RedisNotifier) Publish(ctx context.Context, userID int64, event entities.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, userChannel(userID), payload).Err()
}

func (n *RedisNotifier) Subscribe(ctx context.Context, userID int64) (<-chan entities.Event, func(), error) {
	sub := n.rdb.Subscribe(ctx, userChannel(userID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan entities.Event, subscriberBuffer)
	done := make(chan struct{})
	go func() {
		defer close(out)
		messages := sub.Channel()
		for {
			select {
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event entities.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					n.logger.WithError(err).Warn("dropping malformed event")
					continue
				}
				select {
				case out <- event:
				default:
					n.logger.WithField("user_id", userID).Warn("subscriber too slow, dropping event")
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}
	return out, cancel, nil
}
