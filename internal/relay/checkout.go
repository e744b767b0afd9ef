package relay

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/intasend-go/checkout"
)

// CreateCheckout generates a hosted checkout link.
func (h *Handler) CreateCheckout(c *fiber.Ctx) error {
	req, err := parse[checkout.Request](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*checkout.Checkout, error) {
		return h.api.Checkout.Initiate(ctx, req)
	})
}

// CheckoutDetails looks up a checkout by id and signature.
func (h *Handler) CheckoutDetails(c *fiber.Ctx) error {
	req, err := parse[checkout.DetailsRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*checkout.Details, error) {
		return h.api.Checkout.Details(ctx, req)
	})
}
