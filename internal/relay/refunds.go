package relay

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/intasend-go/refunds"
)

func (h *Handler) ListRefunds(c *fiber.Ctx) error {
	return list(c, h, refunds.BasePath, h.api.Refunds.List, h.api.Refunds.ListNext)
}

func (h *Handler) CreateRefund(c *fiber.Ctx) error {
	req, err := parse[refunds.Request](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*refunds.Refund, error) {
		return h.api.Refunds.Create(ctx, req)
	})
}

func (h *Handler) GetRefund(c *fiber.Ctx) error {
	id := c.Params("id")
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*refunds.Refund, error) {
		return h.api.Refunds.Get(ctx, id)
	})
}
