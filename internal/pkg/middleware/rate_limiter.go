package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/constants"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// fixed-window counter; the first hit in a window sets its expiry
var incrWithExpiry = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// RateLimiterMiddleware limits requests per route and client using a Redis counter
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				identifier = userID
			}
			key := fmt.Sprintf(constants.KeyRateLimit, config.Key, c.Path(), identifier)

			res, err := incrWithExpiry.Run(c.Request().Context(), config.RedisClient, []string{key}, config.Period.Milliseconds()).Slice()
			if err != nil || len(res) != 2 {
				logger.Error("Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}
			count, _ := res[0].(int64)
			ttlMillis, _ := res[1].(int64)
			ttl := time.Duration(ttlMillis) * time.Millisecond

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				h.Set("X-RateLimit-Remaining", "0")
				h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded", ttl)
			}

			h.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "ip",
		Limit:       limit,
		Period:      period,
	})
}
