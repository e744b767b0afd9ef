package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/client"
	"github.com/congo-pay/intasend-go/internal/audit"
	"github.com/congo-pay/intasend-go/internal/config"
	"github.com/congo-pay/intasend-go/internal/metrics"
	"github.com/congo-pay/intasend-go/internal/relay"
	"github.com/congo-pay/intasend-go/internal/routes"
)

// Server wraps the Fiber application and shared dependencies.
type Server struct {
	app *fiber.App
	cfg config.Config
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
// db and cache may be nil in development.
func New(cfg config.Config, db *pgxpool.Pool, cache *redis.Client, gateway *client.API, auditRepo audit.Repository, logger *zap.Logger) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.Gateway.Timeout + 5*time.Second,
		ErrorHandler:          relay.ErrorHandler,
		DisableStartupMessage: !cfg.IsDev(),
	})

	err := routes.Setup(app, routes.Deps{
		Cfg:     cfg,
		DB:      db,
		Cache:   cache,
		Logger:  logger,
		Gateway: gateway,
		Metrics: metrics.New(),
		Audit:   auditRepo,
	})
	if err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg}, nil
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
