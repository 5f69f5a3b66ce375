package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"devcamper/app/apierr"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Counter is the windowed per-key counter behind the rate limiter. The redis
// implementation is the production one; tests swap in an in-memory fake.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct{ Client *redis.Client }

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit caps requests per client IP within the window. Counter failures
// fail open: a dead redis must not take the API down with it.
func RateLimit(counter Counter, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			n, err := counter.Incr(r.Context(), "rate:"+ip, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit counter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if n > limit {
				writeError(w, apierr.New(http.StatusTooManyRequests, "too many requests, please try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
