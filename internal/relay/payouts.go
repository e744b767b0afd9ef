package relay

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/payouts"
)

// payoutProviders maps the :provider route segment onto gateway providers.
var payoutProviders = map[string]intasend.PayoutProvider{
	"mpesa-b2c": intasend.PayoutMpesaB2C,
	"mpesa-b2b": intasend.PayoutMpesaB2B,
	"bank":      intasend.PayoutPesalink,
	"intasend":  intasend.PayoutIntaSend,
	"airtime":   intasend.PayoutAirtime,
}

// InitiatePayout starts a payout batch for the provider named in the path.
func (h *Handler) InitiatePayout(c *fiber.Ctx) error {
	provider, ok := payoutProviders[c.Params("provider")]
	if !ok {
		return &Error{Status: http.StatusNotFound, Message: "unknown payout provider " + strconv.Quote(c.Params("provider")), NotSent: true}
	}
	req, err := parse[payouts.Request](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*payouts.Payout, error) {
		return h.api.Payouts.With(ctx, provider, req)
	})
}

func (h *Handler) ApprovePayout(c *fiber.Ctx) error {
	req, err := parse[payouts.ApprovalRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*payouts.Payout, error) {
		return h.api.Payouts.Approve(ctx, req)
	})
}

func (h *Handler) PayoutStatus(c *fiber.Ctx) error {
	req, err := parse[payouts.StatusRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*payouts.Payout, error) {
		return h.api.Payouts.Status(ctx, req)
	})
}

func (h *Handler) CancelPayout(c *fiber.Ctx) error {
	req, err := parse[payouts.CancelRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*payouts.Payout, error) {
		return h.api.Payouts.Cancel(ctx, req)
	})
}

// BankCodesKE serves the Kenyan bank codes from the cache. X-Cache reports
// whether the gateway was consulted.
func (h *Handler) BankCodesKE(c *fiber.Ctx) error {
	codes, cached, err := h.bankCodes.Get(c.UserContext())
	if err != nil {
		return h.gatewayError(err)
	}
	if cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.JSON(codes)
}
