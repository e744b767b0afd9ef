package collection

import (
	"time"

	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/paymentlinks"
)

// STKPushRequest prompts PhoneNumber to authorise a payment of Amount KES.
type STKPushRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"amount"`
	PhoneNumber string          `json:"phone_number" validate:"required,msisdn"`
	APIRef      string          `json:"api_ref,omitempty"`
	WalletID    string          `json:"wallet_id,omitempty"`
}

type STKPushResponse struct {
	Invoice     *intasend.Invoice  `json:"invoice"`
	Customer    *intasend.Customer `json:"customer"`
	PaymentLink *string            `json:"payment_link"`
	Refundable  bool               `json:"refundable"`
	CreatedAt   time.Time          `json:"created_at,omitzero"`
	UpdatedAt   time.Time          `json:"updated_at,omitzero"`
}

// StatusRequest looks up an invoice. CheckoutID and Signature are only needed
// for invoices raised through a checkout page.
type StatusRequest struct {
	InvoiceID  string `json:"invoice_id" validate:"required"`
	CheckoutID string `json:"checkout_id,omitempty"`
	Signature  string `json:"signature,omitempty"`
}

type StatusResponse struct {
	Invoice *intasend.Invoice `json:"invoice"`
	Meta    Meta              `json:"meta"`
}

type Meta struct {
	ID              string                    `json:"id"`
	CustomerComment *string                   `json:"customer_comment"`
	PaymentLink     *paymentlinks.PaymentLink `json:"payment_link"`
	Customer        *intasend.Customer        `json:"customer"`
	CreatedAt       time.Time                 `json:"created_at,omitzero"`
	UpdatedAt       time.Time                 `json:"updated_at,omitzero"`
}
