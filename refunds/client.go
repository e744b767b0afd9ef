// Package refunds raises and tracks refunds, which the gateway calls
// chargebacks.
package refunds

import (
	"context"
	"net/http"
	"net/url"

	intasend "github.com/congo-pay/intasend-go"
)

// BasePath is the chargeback listing.
const BasePath = "/api/v1/chargebacks/"

type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

func (c *Client) List(ctx context.Context) (*intasend.Page[Refund], error) {
	return intasend.Send[intasend.Page[Refund]](ctx, c.B, http.MethodGet, BasePath, intasend.SecretKeyAuth, nil)
}

func (c *Client) ListNext(ctx context.Context, page *intasend.Page[Refund]) (*intasend.Page[Refund], error) {
	return intasend.NextPage(ctx, c.B, intasend.SecretKeyAuth, page)
}

// Create requests a refund. Only invoices in the COMPLETE state qualify.
func (c *Client) Create(ctx context.Context, req *Request) (*Refund, error) {
	return intasend.Send[Refund](ctx, c.B, http.MethodPost, BasePath, intasend.SecretKeyAuth, req)
}

func (c *Client) Get(ctx context.Context, chargebackID string) (*Refund, error) {
	return intasend.Send[Refund](ctx, c.B, http.MethodGet, BasePath+url.PathEscape(chargebackID)+"/", intasend.SecretKeyAuth, nil)
}
