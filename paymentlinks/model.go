package paymentlinks

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
)

// PaymentLink is a reusable hosted payment page.
type PaymentLink struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	IsActive     bool              `json:"is_active"`
	RedirectURL  *string           `json:"redirect_url"`
	Amount       decimal.Decimal   `json:"amount"`
	UsageLimit   int               `json:"usage_limit"`
	QRCodeFile   *string           `json:"qrcode_file"`
	URL          string            `json:"url"`
	Currency     intasend.Currency `json:"currency"`
	MobileTarrif intasend.Tarrif   `json:"mobile_tarrif"`
	CardTarrif   intasend.Tarrif   `json:"card_tarrif"`
	CreatedAt    *time.Time        `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at"`
}

// CreateRequest creates a payment link. A nil Amount lets the payer choose.
type CreateRequest struct {
	Title        string            `json:"title" validate:"required"`
	Amount       *decimal.Decimal  `json:"amount,omitempty" validate:"omitempty,amount"`
	UsageLimit   *int              `json:"usage_limit,omitempty" validate:"omitempty,gte=1"`
	IsActive     *bool             `json:"is_active,omitempty"`
	MobileTarrif intasend.Tarrif   `json:"mobile_tarrif,omitempty" validate:"omitempty,intasend_enum"`
	CardTarrif   intasend.Tarrif   `json:"card_tarrif,omitempty" validate:"omitempty,intasend_enum"`
	Currency     intasend.Currency `json:"currency" validate:"required,intasend_enum"`
	RedirectURL  string            `json:"redirect_url,omitempty" validate:"omitempty,url"`
}

// UpdateRequest replaces the editable fields of a payment link.
type UpdateRequest CreateRequest
