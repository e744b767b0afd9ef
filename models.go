package intasend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a collection record as reported by the gateway.
type Invoice struct {
	InvoiceID      string          `json:"invoice_id"`
	State          InvoiceState    `json:"state"`
	Provider       string          `json:"provider"`
	Charges        decimal.Decimal `json:"charges"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Currency       Currency        `json:"currency"`
	Value          decimal.Decimal `json:"value"`
	Account        string          `json:"account"`
	APIRef         *string         `json:"api_ref"`
	MpesaReference *string         `json:"mpesa_reference"`
	Host           string          `json:"host"`
	CardInfo       CardInfo        `json:"card_info"`
	RetryCount     int             `json:"retry_count"`
	FailedReason   *string         `json:"failed_reason"`
	FailedCode     *string         `json:"failed_code"`
	FailedCodeLink *string         `json:"failed_code_link"`
	CreatedAt      time.Time       `json:"created_at,omitzero"`
	UpdatedAt      time.Time       `json:"updated_at,omitzero"`
}

type CardInfo struct {
	BinCountry *string `json:"bin_country"`
	CardType   *string `json:"card_type"`
}

type Customer struct {
	CustomerID  string    `json:"customer_id"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Country     *string   `json:"country"`
	Zipcode     *string   `json:"zipcode"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// Transaction is a wallet ledger entry.
type Transaction struct {
	TransactionID  string            `json:"transaction_id"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       Currency          `json:"currency"`
	Value          decimal.Decimal   `json:"value"`
	RunningBalance decimal.Decimal   `json:"running_balance"`
	Narrative      string            `json:"narrative"`
	TransType      TransactionType   `json:"trans_type"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at,omitzero"`
	UpdatedAt      time.Time         `json:"updated_at,omitzero"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != nil && *p.Next != ""
}

// NextPage fetches the page after p. It returns ErrNoNextPage once the
// listing is exhausted.
func NextPage[T any](ctx context.Context, b *Backend, auth Auth, p *Page[T]) (*Page[T], error) {
	if !p.HasNext() {
		return nil, ErrNoNextPage
	}
	return Send[Page[T]](ctx, b, http.MethodGet, *p.Next, auth, nil)
}
