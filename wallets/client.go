// Package wallets manages IntaSend wallets: listing, creation, transfers
// between wallets and top-ups.
package wallets

import (
	"context"
	"net/http"
	"net/url"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/collection"
)

const (
	// BasePath is the wallet listing; wallet endpoints live below it.
	BasePath         = "/api/v1/wallets/"
	fundCheckoutPath = "/api/v1/checkout/"
)

type Client struct {
	B *intasend.Backend
}

func New(b *intasend.Backend) *Client {
	return &Client{B: b}
}

func walletPath(id string, suffix string) string {
	return BasePath + url.PathEscape(id) + "/" + suffix
}

// TransactionsPath is the ledger listing of one wallet.
func TransactionsPath(walletID string) string {
	return walletPath(walletID, "transactions/")
}

func (c *Client) List(ctx context.Context) (*intasend.Page[Wallet], error) {
	return intasend.Send[intasend.Page[Wallet]](ctx, c.B, http.MethodGet, BasePath, intasend.SecretKeyAuth, nil)
}

func (c *Client) ListNext(ctx context.Context, page *intasend.Page[Wallet]) (*intasend.Page[Wallet], error) {
	return intasend.NextPage(ctx, c.B, intasend.SecretKeyAuth, page)
}

func (c *Client) Details(ctx context.Context, walletID string) (*Wallet, error) {
	return intasend.Send[Wallet](ctx, c.B, http.MethodGet, walletPath(walletID, ""), intasend.SecretKeyAuth, nil)
}

// Create opens a wallet. The caller's request is not modified.
func (c *Client) Create(ctx context.Context, req *CreateRequest) (*Wallet, error) {
	if err := intasend.Validate(req); err != nil {
		return nil, err
	}
	payload := *req
	if payload.WalletType == "" {
		payload.WalletType = intasend.WalletWorking
	}
	return intasend.Send[Wallet](ctx, c.B, http.MethodPost, BasePath, intasend.SecretKeyAuth, &payload)
}

// Transactions lists the ledger entries of a wallet.
func (c *Client) Transactions(ctx context.Context, walletID string) (*intasend.Page[intasend.Transaction], error) {
	return intasend.Send[intasend.Page[intasend.Transaction]](ctx, c.B, http.MethodGet, TransactionsPath(walletID), intasend.SecretKeyAuth, nil)
}

func (c *Client) TransactionsNext(ctx context.Context, page *intasend.Page[intasend.Transaction]) (*intasend.Page[intasend.Transaction], error) {
	return intasend.NextPage(ctx, c.B, intasend.SecretKeyAuth, page)
}

// IntraTransfer moves funds from sourceWalletID into req.WalletID.
func (c *Client) IntraTransfer(ctx context.Context, sourceWalletID string, req *IntraTransferRequest) (*IntraTransferResponse, error) {
	return intasend.Send[IntraTransferResponse](ctx, c.B, http.MethodPost, walletPath(sourceWalletID, "intra_transfer/"), intasend.SecretKeyAuth, req)
}

func (c *Client) FundMpesa(ctx context.Context, req *FundMpesaRequest) (*FundMpesaResponse, error) {
	if err := intasend.Validate(req); err != nil {
		return nil, err
	}
	payload := *req
	payload.Method = intasend.ProviderMpesa
	payload.Currency = intasend.KES
	return intasend.Send[FundMpesaResponse](ctx, c.B, http.MethodPost, collection.STKPushPath, intasend.SecretKeyAuth, &payload)
}

func (c *Client) FundCheckout(ctx context.Context, req *FundCheckoutRequest) (*FundCheckoutResponse, error) {
	return intasend.Send[FundCheckoutResponse](ctx, c.B, http.MethodPost, fundCheckoutPath, intasend.PublicKeyAuth, req)
}
