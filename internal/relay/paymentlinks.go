package relay

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/congo-pay/intasend-go/internal/qrcode"
	"github.com/congo-pay/intasend-go/paymentlinks"
)

func linkID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, badRequest("payment link id must be a uuid", err)
	}
	return id, nil
}

func (h *Handler) ListPaymentLinks(c *fiber.Ctx) error {
	return list(c, h, paymentlinks.BasePath, h.api.PaymentLinks.List, h.api.PaymentLinks.ListNext)
}

func (h *Handler) CreatePaymentLink(c *fiber.Ctx) error {
	req, err := parse[paymentlinks.CreateRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*paymentlinks.PaymentLink, error) {
		return h.api.PaymentLinks.Create(ctx, req)
	})
}

func (h *Handler) GetPaymentLink(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*paymentlinks.PaymentLink, error) {
		return h.api.PaymentLinks.Details(ctx, id)
	})
}

func (h *Handler) UpdatePaymentLink(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return err
	}
	req, err := parse[paymentlinks.UpdateRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*paymentlinks.PaymentLink, error) {
		return h.api.PaymentLinks.Update(ctx, id, req)
	})
}

// PaymentLinkQR renders the link's hosted URL as a PNG QR code.
func (h *Handler) PaymentLinkQR(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return err
	}
	link, err := h.api.PaymentLinks.Details(c.UserContext(), id)
	if err != nil {
		return h.gatewayError(err)
	}

	png, err := h.qr.PNG(link.URL)
	if errors.Is(err, qrcode.ErrEmptyContent) {
		return &Error{Status: http.StatusUnprocessableEntity, Message: "payment link has no url", Err: err}
	}
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "private, max-age=300")
	return c.Send(png)
}
