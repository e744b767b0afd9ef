// Package paymentlinks manages reusable payment links.
package paymentlinks

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	intasend "github.com/congo-pay/intasend-go"
)

// BasePath is the payment link listing.
const BasePath = "/api/v1/paymentlinks/"

type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

func linkPath(id uuid.UUID) string {
	return BasePath + id.String() + "/"
}

// List returns the first page of payment links.
func (c *Client) List(ctx context.Context) (*intasend.Page[PaymentLink], error) {
	return intasend.Send[intasend.Page[PaymentLink]](ctx, c.B, http.MethodGet, BasePath, intasend.SecretKeyAuth, nil)
}

// ListNext follows page.Next.
func (c *Client) ListNext(ctx context.Context, page *intasend.Page[PaymentLink]) (*intasend.Page[PaymentLink], error) {
	return intasend.NextPage(ctx, c.B, intasend.SecretKeyAuth, page)
}

func (c *Client) Details(ctx context.Context, id uuid.UUID) (*PaymentLink, error) {
	return intasend.Send[PaymentLink](ctx, c.B, http.MethodGet, linkPath(id), intasend.SecretKeyAuth, nil)
}

func (c *Client) Create(ctx context.Context, req *CreateRequest) (*PaymentLink, error) {
	return intasend.Send[PaymentLink](ctx, c.B, http.MethodPost, BasePath, intasend.SecretKeyAuth, req)
}

// Update sends req as the new state of the link.
func (c *Client) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*PaymentLink, error) {
	return intasend.Send[PaymentLink](ctx, c.B, http.MethodPut, linkPath(id), intasend.SecretKeyAuth, req)
}
