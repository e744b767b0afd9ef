// Package checkout creates hosted checkout pages and reads them back.
package checkout

import (
	"context"
	"net/http"

	intasend "github.com/congo-pay/intasend-go"
)

const (
	initiatePath = "/api/v1/checkout/"
	detailsPath  = "/api/v1/checkout/details/"
)

// Client calls the checkout endpoints. Both authenticate with the
// publishable key.
type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

// Initiate creates a checkout link.
func (c *Client) Initiate(ctx context.Context, req *Request) (*Checkout, error) {
	return intasend.Send[Checkout](ctx, c.B, http.MethodPost, initiatePath, intasend.PublicKeyAuth, req)
}

// Details fetches a checkout created earlier.
func (c *Client) Details(ctx context.Context, req *DetailsRequest) (*Details, error) {
	return intasend.Send[Details](ctx, c.B, http.MethodPost, detailsPath, intasend.PublicKeyAuth, req)
}
