package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitPrefix = "ratelimit:v1:"

// RateLimit applies a fixed one minute window per caller, falling back to the
// client IP for unauthenticated callers. Redis failures let the request through.
func RateLimit(cache *redis.Client, perMinute int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil || perMinute <= 0 {
			return c.Next()
		}

		subject := CallerFrom(c)
		if subject == "" || subject == "anonymous" {
			subject = "ip:" + c.IP()
		}
		now := time.Now()
		window := now.Unix() / 60
		key := rateLimitPrefix + subject + ":" + strconv.FormatInt(window, 10)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		count, err := cache.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("subject", subject), zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			cache.Expire(ctx, key, time.Minute)
		}

		remaining := int64(perMinute) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(perMinute) {
			reset := 60 - now.Unix()%60
			c.Set(fiber.HeaderRetryAfter, strconv.FormatInt(reset, 10))
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}
