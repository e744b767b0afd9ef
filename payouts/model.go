package payouts

import (
	"github.com/shopspring/decimal"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/wallets"
)

// Request initiates a payout batch. Provider is set by the helper used to
// send it; Initiate sends it as given.
type Request struct {
	Currency         intasend.Currency       `json:"currency" validate:"required,intasend_enum"`
	Provider         intasend.PayoutProvider `json:"provider,omitempty" validate:"omitempty,intasend_enum"`
	DeviceID         string                  `json:"device_id,omitempty"`
	CallbackURL      string                  `json:"callback_url,omitempty" validate:"omitempty,url"`
	BatchReference   string                  `json:"batch_reference,omitempty"`
	RequiresApproval intasend.PayoutApproval `json:"requires_approval,omitempty" validate:"omitempty,intasend_enum"`
	Transactions     []Transaction           `json:"transactions" validate:"required,min=1,dive"`
}

// Transaction is one recipient in a payout batch. Account is a phone number,
// bank account or IntaSend wallet depending on the provider.
type Transaction struct {
	Name             string          `json:"name,omitempty"`
	Account          string          `json:"account" validate:"required"`
	IDNumber         string          `json:"id_number,omitempty"`
	Amount           decimal.Decimal `json:"amount" validate:"amount"`
	BankCode         string          `json:"bank_code,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	Narrative        string          `json:"narrative,omitempty"`
	AccountType      string          `json:"account_type,omitempty"`
	AccountReference string          `json:"account_reference,omitempty"`
}

// TransactionResult is a batch entry as reported back by the gateway.
type TransactionResult struct {
	Status             *string         `json:"status"`
	StatusCode         *string         `json:"status_code"`
	RequestReferenceID *string         `json:"request_reference_id"`
	Name               *string         `json:"name"`
	Account            string          `json:"account"`
	IDNumber           *string         `json:"id_number"`
	BankCode           *string         `json:"bank_code"`
	Amount             decimal.Decimal `json:"amount"`
	Narrative          *string         `json:"narrative"`
}

// Payout is the state of a payout batch. Every endpoint in this package
// returns it.
type Payout struct {
	FileID              *string             `json:"file_id"`
	DeviceID            *string             `json:"device_id"`
	TrackingID          *string             `json:"tracking_id"`
	BatchReference      *string             `json:"batch_reference"`
	Status              *string             `json:"status"`
	StatusCode          *string             `json:"status_code"`
	Nonce               *string             `json:"nonce"`
	Wallet              *wallets.Wallet     `json:"wallet"`
	Transactions        []TransactionResult `json:"transactions"`
	ChargeEstimate      decimal.NullDecimal `json:"charge_estimate"`
	TotalAmountEstimate decimal.NullDecimal `json:"total_amount_estimate"`
	TotalAmount         decimal.NullDecimal `json:"total_amount"`
	TransactionsCount   *int                `json:"transactions_count"`
}

// ApprovalRequest confirms an initiated batch. Nonce and TrackingID come from
// the initiate response.
type ApprovalRequest struct {
	TrackingID     string              `json:"tracking_id" validate:"required"`
	BatchReference string              `json:"batch_reference"`
	Nonce          string              `json:"nonce" validate:"required"`
	Wallet         *wallets.Wallet     `json:"wallet,omitempty"`
	Transactions   []TransactionResult `json:"transactions,omitempty"`
}

type StatusRequest struct {
	TrackingID string `json:"tracking_id" validate:"required"`
}

type CancelRequest struct {
	FileID string `json:"file_id" validate:"required"`
}

type BankCode struct {
	BankName string `json:"bank_name"`
	BankCode string `json:"bank_code"`
}
