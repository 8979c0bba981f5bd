package lock

import (
	"context"
	"time"

	"coletaverde/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisLocker hands out non-blocking redislock leases.
type RedisLocker struct {
	client *redislock.Client
	logger logrus.FieldLogger
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb *redis.Client, logger logrus.FieldLogger) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb), logger: logger.WithField("module", "lock")}
}

// TryLock returns ok=false without error when another holder owns key.
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	lk, err := l.client.Obtain(ctx, key, ttl, nil)
	if err == redislock.ErrNotObtained {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	release := func() {
		// Expired leases report ErrLockNotHeld.
		if err := lk.Release(context.Background()); err != nil && err != redislock.ErrLockNotHeld {
			l.logger.WithError(err).WithField("key", key).Debug("lock release failed")
		}
	}
	return release, true, nil
}
