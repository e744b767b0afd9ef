package relay

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/wallets"
)

func (h *Handler) ListWallets(c *fiber.Ctx) error {
	return list(c, h, wallets.BasePath, h.api.Wallets.List, h.api.Wallets.ListNext)
}

func (h *Handler) CreateWallet(c *fiber.Ctx) error {
	req, err := parse[wallets.CreateRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*wallets.Wallet, error) {
		return h.api.Wallets.Create(ctx, req)
	})
}

func (h *Handler) GetWallet(c *fiber.Ctx) error {
	id := c.Params("id")
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*wallets.Wallet, error) {
		return h.api.Wallets.Details(ctx, id)
	})
}

// WalletTransactions lists a wallet's ledger. The cursor query param pages
// through the result.
func (h *Handler) WalletTransactions(c *fiber.Ctx) error {
	id := c.Params("id")
	first := func(ctx context.Context) (*intasend.Page[intasend.Transaction], error) {
		return h.api.Wallets.Transactions(ctx, id)
	}
	return list(c, h, wallets.TransactionsPath(id), first, h.api.Wallets.TransactionsNext)
}

func (h *Handler) IntraTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	req, err := parse[wallets.IntraTransferRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*wallets.IntraTransferResponse, error) {
		return h.api.Wallets.IntraTransfer(ctx, id, req)
	})
}

func (h *Handler) FundWalletMpesa(c *fiber.Ctx) error {
	req, err := parse[wallets.FundMpesaRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*wallets.FundMpesaResponse, error) {
		return h.api.Wallets.FundMpesa(ctx, req)
	})
}

func (h *Handler) FundWalletCheckout(c *fiber.Ctx) error {
	req, err := parse[wallets.FundCheckoutRequest](c)
	if err != nil {
		return err
	}
	return relay(c, h, http.StatusCreated, func(ctx context.Context) (*wallets.FundCheckoutResponse, error) {
		return h.api.Wallets.FundCheckout(ctx, req)
	})
}
