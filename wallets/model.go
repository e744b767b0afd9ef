package wallets

import (
	"time"

	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/checkout"
	"github.com/congo-pay/intasend-go/collection"
)

type Wallet struct {
	WalletID         string              `json:"wallet_id"`
	Label            string              `json:"label"`
	CanDisburse      bool                `json:"can_disburse"`
	Currency         intasend.Currency   `json:"currency"`
	WalletType       intasend.WalletType `json:"wallet_type"`
	CurrentBalance   decimal.Decimal     `json:"current_balance"`
	AvailableBalance decimal.Decimal     `json:"available_balance"`
	UpdatedAt        time.Time           `json:"updated_at,omitzero"`
}

// CreateRequest opens a new wallet. WalletType defaults to WORKING.
type CreateRequest struct {
	Currency    intasend.Currency   `json:"currency" validate:"required,intasend_enum"`
	WalletType  intasend.WalletType `json:"wallet_type" validate:"omitempty,intasend_enum"`
	CanDisburse bool                `json:"can_disburse"`
	Label       string              `json:"label" validate:"required"`
}

// IntraTransferRequest moves Amount into the wallet named by WalletID.
type IntraTransferRequest struct {
	WalletID  string          `json:"wallet_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"amount"`
	Narrative string          `json:"narrative" validate:"required"`
}

type IntraTransferResponse struct {
	Origin      Wallet `json:"origin"`
	Destination Wallet `json:"destination"`
}

// FundMpesaRequest tops up a wallet with an M-Pesa STK push. Method and
// Currency are always sent as MPESA and KES.
type FundMpesaRequest struct {
	Amount      decimal.Decimal   `json:"amount" validate:"amount"`
	Method      intasend.Provider `json:"method"`
	WalletID    string            `json:"wallet_id" validate:"required"`
	Currency    intasend.Currency `json:"currency"`
	PhoneNumber string            `json:"phone_number" validate:"required,msisdn"`
	APIRef      string            `json:"api_ref,omitempty"`
}

type FundMpesaResponse = collection.STKPushResponse

// FundCheckoutRequest tops up a wallet through a hosted checkout page.
type FundCheckoutRequest struct {
	Amount      decimal.Decimal   `json:"amount" validate:"amount"`
	WalletID    string            `json:"wallet_id" validate:"required"`
	Currency    intasend.Currency `json:"currency" validate:"required,intasend_enum"`
	Email       string            `json:"email,omitempty" validate:"omitempty,email"`
	APIRef      string            `json:"api_ref,omitempty"`
	Method      intasend.Provider `json:"method,omitempty" validate:"omitempty,intasend_enum"`
	FirstName   string            `json:"first_name,omitempty"`
	LastName    string            `json:"last_name,omitempty"`
	RedirectURL string            `json:"redirect_url,omitempty" validate:"omitempty,url"`
}

type FundCheckoutResponse = checkout.Checkout
