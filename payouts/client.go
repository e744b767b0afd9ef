// Package payouts sends money out of an IntaSend account: M-Pesa B2C and
// B2B, PesaLink bank transfers, IntaSend wallet transfers and airtime.
//
// A payout is a two-step flow. Initiate (or one of the provider helpers)
// returns a Payout carrying a tracking id and nonce; Approve or
// ApproveInitiated then releases the batch.
package payouts

import (
	"context"
	"fmt"
	"net/http"

	intasend "github.com/congo-pay/intasend-go"
)

const (
	initiatePath  = "/api/v1/send-money/initiate/"
	approvePath   = "/api/v1/send-money/approve/"
	statusPath    = "/api/v1/send-money/status/"
	cancelPath    = "/api/v1/send-money/cancel/"
	bankCodesPath = "/api/v1/send-money/bank-codes/ke/"
)

type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

// Initiate submits req exactly as given.
func (c *Client) Initiate(ctx context.Context, req *Request) (*Payout, error) {
	return intasend.Send[Payout](ctx, c.B, http.MethodPost, initiatePath, intasend.SecretKeyAuth, req)
}

// With sends a copy of req with Provider set to provider.
func (c *Client) With(ctx context.Context, provider intasend.PayoutProvider, req *Request) (*Payout, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil payout request", intasend.ErrInvalidRequest)
	}
	payload := *req
	payload.Provider = provider
	return c.Initiate(ctx, &payload)
}

func (c *Client) MpesaB2C(ctx context.Context, req *Request) (*Payout, error) {
	return c.With(ctx, intasend.PayoutMpesaB2C, req)
}

func (c *Client) MpesaB2B(ctx context.Context, req *Request) (*Payout, error) {
	return c.With(ctx, intasend.PayoutMpesaB2B, req)
}

// Bank pays out to bank accounts over PesaLink. Each transaction needs a
// BankCode; see BankCodesKE.
func (c *Client) Bank(ctx context.Context, req *Request) (*Payout, error) {
	return c.With(ctx, intasend.PayoutPesalink, req)
}

func (c *Client) IntaSend(ctx context.Context, req *Request) (*Payout, error) {
	return c.With(ctx, intasend.PayoutIntaSend, req)
}

func (c *Client) Airtime(ctx context.Context, req *Request) (*Payout, error) {
	return c.With(ctx, intasend.PayoutAirtime, req)
}

func (c *Client) Approve(ctx context.Context, req *ApprovalRequest) (*Payout, error) {
	return intasend.Send[Payout](ctx, c.B, http.MethodPost, approvePath, intasend.SecretKeyAuth, req)
}

// ApproveInitiated approves the batch described by an Initiate response.
func (c *Client) ApproveInitiated(ctx context.Context, p *Payout) (*Payout, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil payout", intasend.ErrInvalidRequest)
	}
	return c.Approve(ctx, ApprovalFor(p))
}

// ApprovalFor builds the approval payload for an initiated payout.
func ApprovalFor(p *Payout) *ApprovalRequest {
	return &ApprovalRequest{
		TrackingID:     deref(p.TrackingID),
		BatchReference: deref(p.BatchReference),
		Nonce:          deref(p.Nonce),
		Wallet:         p.Wallet,
		Transactions:   p.Transactions,
	}
}

func (c *Client) Status(ctx context.Context, req *StatusRequest) (*Payout, error) {
	return intasend.Send[Payout](ctx, c.B, http.MethodPost, statusPath, intasend.SecretKeyAuth, req)
}

// Cancel stops a batch that has not been approved yet.
func (c *Client) Cancel(ctx context.Context, req *CancelRequest) (*Payout, error) {
	return intasend.Send[Payout](ctx, c.B, http.MethodPost, cancelPath, intasend.SecretKeyAuth, req)
}

// BankCodesKE lists the Kenyan banks reachable over PesaLink.
func (c *Client) BankCodesKE(ctx context.Context) ([]BankCode, error) {
	codes, err := intasend.Send[[]BankCode](ctx, c.B, http.MethodGet, bankCodesPath, intasend.PublicKeyAuth, nil)
	if err != nil {
		return nil, err
	}
	return *codes, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
