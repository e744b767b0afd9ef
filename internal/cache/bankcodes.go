// Package cache keeps slow-changing gateway reference data in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/payouts"
)

const bankCodesKey = "intasend:v1:bank-codes:ke"

// BankCodeSource fetches the Kenyan bank code list from the gateway.
type BankCodeSource interface {
	BankCodesKE(ctx context.Context) ([]payouts.BankCode, error)
}

// BankCodes serves the bank code list from Redis, refreshing it from the
// gateway once the entry expires. Without Redis every call hits the gateway.
type BankCodes struct {
	cache   *redis.Client
	source  BankCodeSource
	ttl     time.Duration
	logger  *zap.Logger
	lookups *prometheus.CounterVec
}

// NewBankCodes builds the cache. cache and lookups may be nil.
func NewBankCodes(cache *redis.Client, source BankCodeSource, ttl time.Duration, logger *zap.Logger, lookups *prometheus.CounterVec) *BankCodes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankCodes{cache: cache, source: source, ttl: ttl, logger: logger, lookups: lookups}
}

// Get returns the bank codes and whether they came from the cache.
func (b *BankCodes) Get(ctx context.Context) ([]payouts.BankCode, bool, error) {
	if b.cache != nil {
		raw, err := b.cache.Get(ctx, bankCodesKey).Bytes()
		switch {
		case err == nil:
			var codes []payouts.BankCode
			if err := json.Unmarshal(raw, &codes); err == nil {
				b.count("hit")
				return codes, true, nil
			}
			b.logger.Warn("discarding undecodable bank code cache entry")
		case errors.Is(err, redis.Nil):
		default:
			b.logger.Warn("bank code cache lookup failed", zap.Error(err))
		}
	}
	b.count("miss")

	codes, err := b.source.BankCodesKE(ctx)
	if err != nil {
		return nil, false, err
	}

	if b.cache != nil && b.ttl > 0 {
		payload, err := json.Marshal(codes)
		if err == nil {
			err = b.cache.Set(ctx, bankCodesKey, payload, b.ttl).Err()
		}
		if err != nil {
			b.logger.Warn("bank code cache store failed", zap.Error(err))
		}
	}
	return codes, false, nil
}

// Invalidate drops the cached list.
func (b *BankCodes) Invalidate(ctx context.Context) error {
	if b.cache == nil {
		return nil
	}
	return b.cache.Del(ctx, bankCodesKey).Err()
}

func (b *BankCodes) count(result string) {
	if b.lookups != nil {
		b.lookups.WithLabelValues(result).Inc()
	}
}
