// Package collection collects money over M-Pesa and tracks invoice status.
package collection

import (
	"context"
	"net/http"

	intasend "github.com/congo-pay/intasend-go"
)

const (
	// STKPushPath is shared with wallet funding.
	STKPushPath = "/api/v1/payment/mpesa-stk-push/"
	statusPath  = "/api/v1/payment/status/"
)

type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

// MpesaSTKPush sends an M-Pesa payment prompt to the customer's phone. The
// returned invoice starts out PENDING; poll Status for the outcome.
func (c *Client) MpesaSTKPush(ctx context.Context, req *STKPushRequest) (*STKPushResponse, error) {
	return intasend.Send[STKPushResponse](ctx, c.B, http.MethodPost, STKPushPath, intasend.SecretKeyAuth, req)
}

func (c *Client) Status(ctx context.Context, req *StatusRequest) (*StatusResponse, error) {
	return intasend.Send[StatusResponse](ctx, c.B, http.MethodPost, statusPath, intasend.SecretKeyAuth, req)
}
