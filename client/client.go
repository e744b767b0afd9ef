// Package client bundles every IntaSend resource client behind one value.
package client

import (
	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/checkout"
	"github.com/congo-pay/intasend-go/collection"
	"github.com/congo-pay/intasend-go/paymentlinks"
	"github.com/congo-pay/intasend-go/payouts"
	"github.com/congo-pay/intasend-go/refunds"
	"github.com/congo-pay/intasend-go/wallets"
)

// API shares one Backend between all resource clients.
type API struct {
	Backend      *intasend.Backend
	Checkout     *checkout.Client
	Collection   *collection.Client
	Payouts      *payouts.Client
	Refunds      *refunds.Client
	Wallets      *wallets.Client
	PaymentLinks *paymentlinks.Client
}

func New(publishableKey, secretKey string, testMode bool, opts ...intasend.Option) *API {
	return NewWithBackend(intasend.NewBackend(publishableKey, secretKey, testMode, opts...))
}

func NewWithBackend(b *intasend.Backend) *API {
	return &API{
		Backend:      b,
		Checkout:     checkout.New(b),
		Collection:   collection.New(b),
		Payouts:      payouts.New(b),
		Refunds:      refunds.New(b),
		Wallets:      wallets.New(b),
		PaymentLinks: paymentlinks.New(b),
	}
}
