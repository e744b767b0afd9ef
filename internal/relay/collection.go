package relay

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/intasend-go/collection"
)

func (h *Handler) MpesaSTKPush(c *fiber.Ctx) error {
	req, err := parse[collection.STKPushRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*collection.STKPushResponse, error) {
		return h.api.Collection.MpesaSTKPush(ctx, req)
	})
}

func (h *Handler) CollectionStatus(c *fiber.Ctx) error {
	req, err := parse[collection.StatusRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*collection.StatusResponse, error) {
		return h.api.Collection.Status(ctx, req)
	})
}
