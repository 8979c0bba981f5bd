package database

import (
	"context"
	"time"

	"coletaverde/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const maxRedisBackoff = 30 * time.Second

// ConnectRedis dials redis and retries with exponential backoff until the
// server answers or ctx is done. It returns nil when REDIS_ADDRESS is unset.
func ConnectRedis(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*redis.Client, error) {
	if cfg.RedisAddress == "" {
		return nil, nil
	}
	log := logger.WithFields(logrus.Fields{"module": "redis", "addr": cfg.RedisAddress})

	for attempt := 1; ; attempt++ {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: 100,
		})
		err := rdb.Ping(ctx).Err()
		if err == nil {
			log.WithField("attempt", attempt).Info("connected to redis")
			return rdb, nil
		}
		_ = rdb.Close()

		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > maxRedisBackoff {
			sleep = maxRedisBackoff
		}
		log.WithError(err).WithFields(logrus.Fields{"attempt": attempt, "retry_in": sleep}).Warn("failed to connect redis")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}
