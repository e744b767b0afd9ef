package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	idempotencyPrefix    = "idempotency:v1:"
	inProgressMarker     = "__in_progress__"
	maxIdempotencyKeyLen = 255
)

type storedResponse struct {
	Status  int               `json:"status"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers"`
}

// Idempotency enforces idempotent semantics across unsafe HTTP methods by
// persisting responses in Redis keyed by the caller and the Idempotency-Key
// header. Every outcome is stored, failures included, unless the handler error
// reports Retryable. A replayed key never reaches the gateway twice.
func Idempotency(cache *redis.Client, ttl time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		switch method {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		key := c.Get(idempotencyKeyHeader)
		if key == "" {
			return fiber.NewError(fiber.StatusBadRequest, "missing Idempotency-Key header")
		}
		if len(key) > maxIdempotencyKeyLen {
			return fiber.NewError(fiber.StatusBadRequest, "Idempotency-Key header too long")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cacheKey := idempotencyPrefix + CallerFrom(c) + ":" + key
		log := logger.With(zap.String("idempotency_key", key), zap.String("request_id", RequestIDFrom(c)))

		cached, err := cache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cached == inProgressMarker {
				return fiber.NewError(fiber.StatusConflict, "duplicate request currently processing")
			}

			var stored storedResponse
			if err := json.Unmarshal([]byte(cached), &stored); err != nil {
				log.Warn("failed to decode stored idempotent response", zap.Error(err))
				return fiber.NewError(fiber.StatusConflict, "duplicate request")
			}

			for header, value := range stored.Headers {
				if replaySkipsHeader(header) {
					continue
				}
				c.Set(header, value)
			}
			c.Set("Idempotent-Replayed", "true")
			return c.Status(stored.Status).SendString(stored.Body)
		}

		if !errors.Is(err, redis.Nil) {
			log.Error("idempotency lookup failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "idempotency store failure")
		}

		reserved, err := cache.SetNX(ctx, cacheKey, inProgressMarker, ttl).Result()
		if err != nil {
			log.Error("idempotency reservation failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "idempotency reservation failure")
		}
		if !reserved {
			return fiber.NewError(fiber.StatusConflict, "duplicate request currently processing")
		}

		release := func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			cache.Del(cleanupCtx, cacheKey)
		}

		err = c.Next()
		if err != nil {
			var r retryable
			if errors.As(err, &r) && r.Retryable() {
				release()
				return err
			}
			// Render now so the stored response is the one the caller sees.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				log.Error("render error for idempotent response", zap.Error(handlerErr))
				return err
			}
		}

		stored := storedResponse{
			Status:  c.Response().StatusCode(),
			Body:    string(c.Response().Body()),
			Headers: map[string]string{},
		}

		c.Response().Header.VisitAll(func(k, v []byte) {
			stored.Headers[string(k)] = string(v)
		})

		// On persistence failures the in-progress marker stays until the TTL
		// expires, so a retry is refused instead of reaching the gateway again.
		payload, encodeErr := json.Marshal(stored)
		if encodeErr != nil {
			log.Error("failed to encode idempotent response", zap.Error(encodeErr))
			return err
		}

		persistCtx, persistCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer persistCancel()

		if setErr := cache.Set(persistCtx, cacheKey, payload, ttl).Err(); setErr != nil {
			log.Error("failed to persist idempotent response", zap.Error(setErr))
		}

		return err
	}
}

// retryable is implemented by handler errors that may report the request
// never reached the gateway.
type retryable interface {
	Retryable() bool
}

// replaySkipsHeader reports headers that belong to the current request rather
// than the stored response.
func replaySkipsHeader(header string) bool {
	switch {
	case strings.EqualFold(header, fiber.HeaderContentLength),
		strings.EqualFold(header, requestIDHeader),
		strings.HasPrefix(strings.ToLower(header), "x-ratelimit-"):
		return true
	default:
		return false
	}
}
