package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HitCounter counts requests for key inside a fixed window.
type HitCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisHitCounter keeps one INCR counter per key that expires with the window.
type RedisHitCounter struct {
	client *redis.Client
}

func NewRedisHitCounter(client *redis.Client) *RedisHitCounter {
	return &RedisHitCounter{client: client}
}

func (r *RedisHitCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

type RateLimiter struct {
	counter HitCounter
	limit   int64
	window  time.Duration
	logger  logrus.FieldLogger
}

func NewRateLimiter(counter HitCounter, limit int64, window time.Duration, logger logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
		logger:  logger.WithField("module", "rate_limiter"),
	}
}

// Middleware limits requests per client IP. Counter failures let the request
// through so a redis outage does not take the API down.
func (rl *RateLimiter) Middleware(c *gin.Context) {
	key := "coletaverde:ratelimit:" + c.ClientIP()

	count, err := rl.counter.Hit(c.Request.Context(), key, rl.window)
	if err != nil {
		rl.logger.WithError(err).Warn("rate limit counter failed")
		c.Next()
		return
	}

	c.Header("X-Requests-Limit", strconv.FormatInt(rl.limit, 10))
	if count > rl.limit {
		appErr := pkg.NewDomainErrorSimple(
			"RATE_LIMITED",
			fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(rl.window.Seconds())),
			http.StatusTooManyRequests,
		)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Next()
}
