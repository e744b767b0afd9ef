package intasend

import (
	"fmt"
	"strings"
)

// Currency is an ISO currency code accepted by the gateway.
type Currency string

const (
	KES Currency = "KES"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

func (c Currency) String() string { return string(c) }

func (c Currency) Valid() bool {
	switch c {
	case KES, USD, EUR, GBP:
		return true
	}
	return false
}

// ParseCurrency accepts a currency code in any letter case.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown currency %q", s)
	}
	return c, nil
}

// Tarrif decides who absorbs the transaction fee.
type Tarrif string

const (
	BusinessPays Tarrif = "BUSINESS-PAYS"
	CustomerPays Tarrif = "CUSTOMER-PAYS"
)

func (t Tarrif) String() string { return string(t) }

func (t Tarrif) Valid() bool {
	return t == BusinessPays || t == CustomerPays
}

// UnmarshalText folds the underscore spelling some endpoints return onto the
// hyphenated form.
func (t *Tarrif) UnmarshalText(text []byte) error {
	*t = normalizeTarrif(string(text))
	return nil
}

func normalizeTarrif(s string) Tarrif {
	return Tarrif(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "_", "-"))
}

func ParseTarrif(s string) (Tarrif, error) {
	t := normalizeTarrif(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tarrif %q", s)
	}
	return t, nil
}

// Provider is a checkout payment method.
type Provider string

const (
	ProviderMpesa       Provider = "MPESA"
	ProviderCardPayment Provider = "CARD-PAYMENT"
	ProviderBitcoin     Provider = "BITCOIN"
	ProviderBankACH     Provider = "BANK-ACH"
	ProviderCoopB2B     Provider = "COOP_B2B"
)

func (p Provider) String() string { return string(p) }

func (p Provider) Valid() bool {
	switch p {
	case ProviderMpesa, ProviderCardPayment, ProviderBitcoin, ProviderBankACH, ProviderCoopB2B:
		return true
	}
	return false
}

func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown provider %q", s)
	}
	return p, nil
}

// PayoutProvider is the disbursement rail used for a payout batch.
type PayoutProvider string

const (
	PayoutMpesaB2C PayoutProvider = "MPESA-B2C"
	PayoutMpesaB2B PayoutProvider = "MPESA-B2B"
	PayoutPesalink PayoutProvider = "PESALINK"
	PayoutIntaSend PayoutProvider = "INTASEND"
	PayoutAirtime  PayoutProvider = "AIRTIME"
)

func (p PayoutProvider) String() string { return string(p) }

func (p PayoutProvider) Valid() bool {
	switch p {
	case PayoutMpesaB2C, PayoutMpesaB2B, PayoutPesalink, PayoutIntaSend, PayoutAirtime:
		return true
	}
	return false
}

func ParsePayoutProvider(s string) (PayoutProvider, error) {
	p := PayoutProvider(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "_", "-"))
	if !p.Valid() {
		return "", fmt.Errorf("unknown payout provider %q", s)
	}
	return p, nil
}

type PayoutApproval string

const (
	ApprovalYes PayoutApproval = "YES"
	ApprovalNo  PayoutApproval = "NO"
)

func (a PayoutApproval) String() string { return string(a) }

func (a PayoutApproval) Valid() bool { return a == ApprovalYes || a == ApprovalNo }

type TransactionType string

const (
	TransactionSale       TransactionType = "SALE"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
	TransactionPayout     TransactionType = "PAYOUT"
	TransactionCharge     TransactionType = "CHARGE"
	TransactionAirtime    TransactionType = "AIRTIME"
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionExchange   TransactionType = "EXCHANGE"
	TransactionUnmarked   TransactionType = "UNMARKED"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionSale, TransactionAdjustment, TransactionPayout, TransactionCharge,
		TransactionAirtime, TransactionDeposit, TransactionExchange, TransactionUnmarked:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusAvailable         TransactionStatus = "AVAILABLE"
	StatusClearing          TransactionStatus = "CLEARING"
	StatusOnHold            TransactionStatus = "ON-HOLD"
	StatusCancelled         TransactionStatus = "CANCELLED"
	StatusChargebackPending TransactionStatus = "CHARGEBACK-PENDING"
	StatusRefunded          TransactionStatus = "REFUNDED"
	StatusAdjustment        TransactionStatus = "ADJUSTMENT"
)

func (s TransactionStatus) String() string { return string(s) }

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusClearing, StatusOnHold, StatusCancelled,
		StatusChargebackPending, StatusRefunded, StatusAdjustment:
		return true
	}
	return false
}

// InvoiceState tracks a collection invoice through the gateway.
type InvoiceState string

const (
	InvoicePending    InvoiceState = "PENDING"
	InvoiceProcessing InvoiceState = "PROCESSING"
	InvoiceComplete   InvoiceState = "COMPLETE"
	InvoiceFailed     InvoiceState = "FAILED"
	InvoiceRetry      InvoiceState = "RETRY"
)

func (s InvoiceState) String() string { return string(s) }

func (s InvoiceState) Valid() bool {
	switch s {
	case InvoicePending, InvoiceProcessing, InvoiceComplete, InvoiceFailed, InvoiceRetry:
		return true
	}
	return false
}

// Terminal reports whether the invoice will not change state again.
func (s InvoiceState) Terminal() bool {
	return s == InvoiceComplete || s == InvoiceFailed
}

type RefundReason string

const (
	ReasonUnavailableService RefundReason = "Unavailable service"
	ReasonDelayedDelivery    RefundReason = "Delayed delivery"
	ReasonWrongService       RefundReason = "Wrong service"
	ReasonDuplicatePayment   RefundReason = "Duplicate payment"
	ReasonOther              RefundReason = "Other"
)

func (r RefundReason) String() string { return string(r) }

func (r RefundReason) Valid() bool {
	switch r {
	case ReasonUnavailableService, ReasonDelayedDelivery, ReasonWrongService,
		ReasonDuplicatePayment, ReasonOther:
		return true
	}
	return false
}

type WalletType string

const (
	WalletSettlement WalletType = "SETTLEMENT"
	WalletWorking    WalletType = "WORKING"
)

func (w WalletType) String() string { return string(w) }

func (w WalletType) Valid() bool { return w == WalletSettlement || w == WalletWorking }
