package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/client"
	"github.com/congo-pay/intasend-go/internal/audit"
	"github.com/congo-pay/intasend-go/internal/cache"
	"github.com/congo-pay/intasend-go/internal/config"
	"github.com/congo-pay/intasend-go/internal/metrics"
	"github.com/congo-pay/intasend-go/internal/middleware"
	"github.com/congo-pay/intasend-go/internal/qrcode"
	"github.com/congo-pay/intasend-go/internal/relay"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Cache   *redis.Client
	Logger  *zap.Logger
	Gateway *client.API
	Metrics *metrics.Metrics
	// Audit defaults to Postgres when DB is set and to memory otherwise.
	Audit audit.Repository
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Gateway == nil {
		return fmt.Errorf("gateway client is required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Audit == nil {
		if d.DB != nil {
			d.Audit = audit.NewPostgresRepository(d.DB)
		} else {
			d.Audit = audit.NewMemoryRepository()
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger, d.Audit, d.Metrics))

	// Health and scraping
	RegisterHealthRoutes(app, d)
	app.Get("/metrics", d.Metrics.Handler())

	bankCodes := cache.NewBankCodes(d.Cache, d.Gateway.Payouts, d.Cfg.BankCodesTTL, d.Logger, d.Metrics.CacheLookups)
	h := relay.NewHandler(relay.Deps{
		API:       d.Gateway,
		BankCodes: bankCodes,
		QR:        qrcode.NewGenerator(d.Cfg.QRSize),
		Audit:     d.Audit,
		Metrics:   d.Metrics,
		Logger:    d.Logger,
	})

	// API routes
	api := app.Group("/api/v1",
		middleware.RelayKey(d.Cfg.RelayKeyHashes),
		middleware.RateLimit(d.Cache, d.Cfg.RateLimitPerMinute, d.Logger),
	)
	idempotent := func(c *fiber.Ctx) error { return c.Next() }
	if d.Cache != nil {
		idempotent = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFrom(c),
			"caller":     middleware.CallerFrom(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterGatewayRoutes(api, h, idempotent)
	api.Get("/audit", h.RecentAudit)

	return nil
}

// RegisterGatewayRoutes wires one relay endpoint per SDK operation. Calls
// that create or move money run behind idempotent. Lookups sent as POST
// (checkout details, collection and payout status) are polled and skip it.
func RegisterGatewayRoutes(r fiber.Router, h *relay.Handler, idempotent fiber.Handler) {
	r.Post("/checkout", idempotent, h.CreateCheckout)
	r.Post("/checkout/details", h.CheckoutDetails)

	r.Post("/collection/mpesa-stk-push", idempotent, h.MpesaSTKPush)
	r.Post("/collection/status", h.CollectionStatus)

	r.Get("/payouts/bank-codes/ke", h.BankCodesKE)
	r.Post("/payouts/approve", idempotent, h.ApprovePayout)
	r.Post("/payouts/status", h.PayoutStatus)
	r.Post("/payouts/cancel", idempotent, h.CancelPayout)
	r.Post("/payouts/:provider", idempotent, h.InitiatePayout)

	r.Get("/refunds", h.ListRefunds)
	r.Post("/refunds", idempotent, h.CreateRefund)
	r.Get("/refunds/:id", h.GetRefund)

	r.Get("/wallets", h.ListWallets)
	r.Post("/wallets", idempotent, h.CreateWallet)
	r.Post("/wallets/fund/mpesa", idempotent, h.FundWalletMpesa)
	r.Post("/wallets/fund/checkout", idempotent, h.FundWalletCheckout)
	r.Get("/wallets/:id", h.GetWallet)
	r.Get("/wallets/:id/transactions", h.WalletTransactions)
	r.Post("/wallets/:id/intra-transfer", idempotent, h.IntraTransfer)

	r.Get("/payment-links", h.ListPaymentLinks)
	r.Post("/payment-links", idempotent, h.CreatePaymentLink)
	r.Get("/payment-links/:id", h.GetPaymentLink)
	r.Put("/payment-links/:id", idempotent, h.UpdatePaymentLink)
	r.Get("/payment-links/:id/qr", h.PaymentLinkQR)
}
