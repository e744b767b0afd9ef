package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/internal/audit"
	"github.com/congo-pay/intasend-go/internal/config"
	"github.com/congo-pay/intasend-go/internal/infra"
	"github.com/congo-pay/intasend-go/internal/logging"
	"github.com/congo-pay/intasend-go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel).With(zap.String("app", cfg.AppName), zap.String("env", cfg.AppEnv))

	if err := run(cfg, logger); err != nil {
		logger.Error("relay stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run owns every connection it opens and closes them before returning.
func run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	var db *pgxpool.Pool
	var auditRepo audit.Repository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		db = pool

		pg := audit.NewPostgresRepository(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("prepare audit schema: %w", err)
		}
		auditRepo = pg
	} else {
		logger.Warn("DATABASE_URL not set, keeping audit log in memory")
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		client, err := infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("close redis", zap.Error(err))
			}
		}()
		cache = client
	} else {
		logger.Warn("REDIS_URL not set, idempotency and rate limiting are disabled")
	}

	gateway := infra.NewGatewayClient(cfg.Gateway, logger)
	logger.Info("gateway configured",
		zap.String("base_url", gateway.Backend.BaseURL()),
		zap.Bool("test_mode", gateway.Backend.TestMode()))

	srv, err := server.New(cfg, db, cache, gateway, auditRepo, logger)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-srvErrCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server exited cleanly")
	return nil
}
