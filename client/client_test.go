package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/client"
	"github.com/congo-pay/intasend-go/internal/gatewaytest"
)

func TestNewSharesBackend(t *testing.T) {
	api := client.New("pub", "secret", true)

	assert.Equal(t, intasend.SandboxURL, api.Backend.BaseURL())
	assert.Same(t, api.Backend, api.Checkout.B)
	assert.Same(t, api.Backend, api.Collection.B)
	assert.Same(t, api.Backend, api.Payouts.B)
	assert.Same(t, api.Backend, api.Refunds.B)
	assert.Same(t, api.Backend, api.Wallets.B)
	assert.Same(t, api.Backend, api.PaymentLinks.B)
}

func TestClientsReachGateway(t *testing.T) {
	gw := gatewaytest.New(t)
	gw.Handle(http.MethodGet, "/api/v1/wallets/", http.StatusOK, `{"count":0,"next":null,"previous":null,"results":[]}`)
	gw.Handle(http.MethodGet, "/api/v1/chargebacks/", http.StatusOK, `{"count":0,"next":null,"previous":null,"results":[]}`)

	api := client.New("pub", "secret", false, intasend.WithBaseURL(gw.URL))

	wallets, err := api.Wallets.List(context.Background())
	require.NoError(t, err)
	assert.Zero(t, wallets.Count)

	refunds, err := api.Refunds.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, refunds.Results)

	assert.Len(t, gw.Requests(), 2)
}
