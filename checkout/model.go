package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
)

// Request creates a hosted checkout page. Only Amount and Currency are
// required; everything else pre-fills the page or routes the funds.
type Request struct {
	FirstName    string            `json:"first_name,omitempty"`
	LastName     string            `json:"last_name,omitempty"`
	Email        string            `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber  string            `json:"phone_number,omitempty" validate:"omitempty,msisdn"`
	Method       intasend.Provider `json:"method,omitempty" validate:"omitempty,intasend_enum"`
	Amount       decimal.Decimal   `json:"amount" validate:"amount"`
	Currency     intasend.Currency `json:"currency" validate:"required,intasend_enum"`
	APIRef       string            `json:"api_ref,omitempty"`
	RedirectURL  string            `json:"redirect_url,omitempty" validate:"omitempty,url"`
	Host         string            `json:"host,omitempty"`
	WalletID     string            `json:"wallet_id,omitempty"`
	Comment      string            `json:"comment,omitempty"`
	MobileTarrif intasend.Tarrif   `json:"mobile_tarrif,omitempty" validate:"omitempty,intasend_enum"`
	CardTarrif   intasend.Tarrif   `json:"card_tarrif,omitempty" validate:"omitempty,intasend_enum"`
}

// Checkout is the gateway's answer to Initiate. Keep ID and Signature to
// query the checkout later.
type Checkout struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	Signature   string            `json:"signature"`
	FirstName   *string           `json:"first_name"`
	LastName    *string           `json:"last_name"`
	Email       *string           `json:"email"`
	Method      intasend.Provider `json:"method"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    intasend.Currency `json:"currency"`
	RedirectURL *string           `json:"redirect_url"`
	Paid        bool              `json:"paid"`
}

type DetailsRequest struct {
	CheckoutID string `json:"checkout_id" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
}

// Details is the full checkout record.
type Details struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Signature     string            `json:"signature"`
	FirstName     *string           `json:"first_name"`
	LastName      *string           `json:"last_name"`
	PhoneNumber   *string           `json:"phone_number"`
	Email         *string           `json:"email"`
	Country       *string           `json:"country"`
	Address       *string           `json:"address"`
	City          *string           `json:"city"`
	State         *string           `json:"state"`
	Zipcode       *string           `json:"zipcode"`
	APIRef        *string           `json:"api_ref"`
	WalletID      *string           `json:"wallet_id"`
	Method        intasend.Provider `json:"method"`
	Channel       *string           `json:"channel"`
	Host          *string           `json:"host"`
	IsMobile      bool              `json:"is_mobile"`
	Version       *string           `json:"version"`
	RedirectURL   *string           `json:"redirect_url"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      intasend.Currency `json:"currency"`
	Paid          bool              `json:"paid"`
	MobileTarrif  intasend.Tarrif   `json:"mobile_tarrif"`
	CardTarrif    intasend.Tarrif   `json:"card_tarrif"`
	BitcoinTarrif intasend.Tarrif   `json:"bitcoin_tarrif"`
	ACHTarrif     intasend.Tarrif   `json:"ach_tarrif"`
	CreatedAt     time.Time         `json:"created_at,omitzero"`
	UpdatedAt     time.Time         `json:"updated_at,omitzero"`
	Defaults      Defaults          `json:"defaults"`
}

// Defaults lists the channels enabled on the merchant account.
type Defaults struct {
	EnableCardPayment    bool              `json:"enable_card_payment"`
	EnableMpesaPayment   bool              `json:"enable_mpesa_payment"`
	EnableBitcoinPayment bool              `json:"enable_bitcoin_payment"`
	EnableACHPayment     bool              `json:"enable_ach_payment"`
	DefaultCurrency      intasend.Currency `json:"default_currency"`
	DefaultTarrif        intasend.Tarrif   `json:"default_tarrif"`
}
