package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/internal/audit"
	"github.com/congo-pay/intasend-go/internal/metrics"
)

// Audit emits a structured log line for each request and records its
// metadata in repo and m. repo and m may be nil.
func Audit(logger *zap.Logger, repo audit.Repository, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Render the error here so the recorded status is the one the caller sees.
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		duration := time.Since(start)
		requestID := RequestIDFrom(c)
		route := c.Route().Path
		caller := CallerFrom(c)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}
		if requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if caller != "" {
			fields = append(fields, zap.String("caller", caller))
		}

		if m != nil {
			m.Requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(c.Method(), route).Observe(duration.Seconds())
		}
		if repo != nil {
			entry := audit.NewEntry(requestID, caller, c.Method(), route, status, duration, err)
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if insertErr := repo.Insert(ctx, entry); insertErr != nil {
				logger.Warn("audit insert failed", zap.String("request_id", requestID), zap.Error(insertErr))
			}
			cancel()
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
			if status >= fiber.StatusInternalServerError {
				logger.Error("request completed", fields...)
			} else {
				logger.Warn("request completed", fields...)
			}
			return nil
		}

		logger.Info("request completed", fields...)
		return nil
	}
}
