package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig configures a fixed window limiter backed by Redis
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string
	Limit       int
	Period      time.Duration
	// KeyFunc picks the bucket of a request; defaults to the client IP
	KeyFunc func(c echo.Context) string
}

// RateLimiterMiddleware rejects requests above Limit per Period with 429.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c echo.Context) string { return c.RealIP() }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", config.Key, keyFunc(c))

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					// a bucket without a TTL would never reset
					logger.Warn("Rate limiter window not set", logger.String("key", key), logger.Err(err))
					config.RedisClient.Del(ctx, key)
					return next(c)
				}
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err == nil && ttl == -1 {
					// left without expiry by an earlier failure
					config.RedisClient.Expire(ctx, key, config.Period)
					ttl = config.Period
				}
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// RouteFixRateLimiter limits position reports per route id and client
func RouteFixRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:fix",
		Limit:       limit,
		Period:      period,
		KeyFunc: func(c echo.Context) string {
			return c.Param("id") + ":" + c.RealIP()
		},
	})
}
