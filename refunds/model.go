package refunds

import (
	"time"

	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
)

// Request opens a refund against a completed invoice.
type Request struct {
	InvoiceID     string                `json:"invoice" validate:"required"`
	Amount        decimal.Decimal       `json:"amount" validate:"amount"`
	Currency      intasend.Currency     `json:"currency,omitempty" validate:"omitempty,intasend_enum"`
	Method        string                `json:"method,omitempty"`
	Recipient     string                `json:"recipient,omitempty"`
	Reason        intasend.RefundReason `json:"reason" validate:"required,intasend_enum"`
	ReasonDetails string                `json:"reason_details,omitempty"`
}

// Refund is a chargeback record.
type Refund struct {
	ChargebackID  string                `json:"chargeback_id"`
	SessionID     string                `json:"session_id"`
	Transaction   intasend.Transaction  `json:"transaction"`
	Amount        decimal.Decimal       `json:"amount"`
	Status        string                `json:"status"`
	Reason        intasend.RefundReason `json:"reason"`
	ReasonDetails *string               `json:"reason_details"`
	Resolution    *string               `json:"resolution"`
	StaffCreated  bool                  `json:"staff_created"`
	CreatedAt     time.Time             `json:"created_at,omitzero"`
	UpdatedAt     time.Time             `json:"updated_at,omitzero"`
}
