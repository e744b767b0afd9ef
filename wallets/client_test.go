package wallets_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/internal/gatewaytest"
	"github.com/congo-pay/intasend-go/wallets"
)

const walletJSON = `{
	"wallet_id": "ZQMMOQO",
	"label": "ops-float",
	"can_disburse": true,
	"currency": "KES",
	"wallet_type": "WORKING",
	"current_balance": "1200.50",
	"available_balance": 1000,
	"updated_at": "2024-01-15T08:30:00+03:00"
}`

func newClient(t *testing.T) (*wallets.Client, *gatewaytest.Server) {
	t.Helper()
	gw := gatewaytest.New(t)
	b := intasend.NewBackend("pub", "secret", true, intasend.WithBaseURL(gw.URL))
	return wallets.New(b), gw
}

func TestList(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/wallets/", http.StatusOK, `{"count":1,"next":null,"previous":null,"results":[`+walletJSON+`]}`)

	page, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	w := page.Results[0]
	assert.Equal(t, "ZQMMOQO", w.WalletID)
	assert.Equal(t, intasend.WalletWorking, w.WalletType)
	assert.True(t, w.CurrentBalance.Equal(decimal.RequireFromString("1200.5")))
	assert.True(t, w.AvailableBalance.Equal(decimal.NewFromInt(1000)))
	assert.False(t, page.HasNext())

	_, err = client.ListNext(context.Background(), page)
	assert.ErrorIs(t, err, intasend.ErrNoNextPage)
}

func TestDetails(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/wallets/ZQMMOQO/", http.StatusOK, walletJSON)

	w, err := client.Details(context.Background(), "ZQMMOQO")
	require.NoError(t, err)
	assert.Equal(t, "ops-float", w.Label)
	assert.Equal(t, "secret", gw.Last(t).Bearer)
}

func TestCreateDefaultsToWorkingWallet(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/wallets/", http.StatusCreated, walletJSON)

	req := &wallets.CreateRequest{Currency: intasend.KES, Label: "ops-float", CanDisburse: true}
	_, err := client.Create(context.Background(), req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"currency":"KES","wallet_type":"WORKING","can_disburse":true,"label":"ops-float"}`, string(gw.Last(t).Body))
	assert.Empty(t, req.WalletType)
}

func TestCreateRejectsMissingLabel(t *testing.T) {
	client, gw := newClient(t)

	_, err := client.Create(context.Background(), &wallets.CreateRequest{Currency: intasend.KES})
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)

	_, err = client.Create(context.Background(), nil)
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)

	assert.Empty(t, gw.Requests())
}

func TestTransactions(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/wallets/ZQMMOQO/transactions/", http.StatusOK, `{
		"count": 1, "next": null, "previous": null,
		"results": [{
			"transaction_id": "TX1",
			"amount": "-50.00",
			"currency": "KES",
			"value": "50.00",
			"running_balance": "1150.50",
			"narrative": "Payout",
			"trans_type": "PAYOUT",
			"status": "CLEARING",
			"created_at": "2024-01-15T09:00:00+03:00",
			"updated_at": "2024-01-15T09:00:00+03:00"
		}]
	}`)

	page, err := client.Transactions(context.Background(), "ZQMMOQO")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	tx := page.Results[0]
	assert.Equal(t, intasend.TransactionPayout, tx.TransType)
	assert.Equal(t, intasend.StatusClearing, tx.Status)
	assert.True(t, tx.Amount.IsNegative())
}

func TestIntraTransfer(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/wallets/SRC001/intra_transfer/", http.StatusOK,
		`{"origin":`+walletJSON+`,"destination":`+walletJSON+`}`)

	got, err := client.IntraTransfer(context.Background(), "SRC001", &wallets.IntraTransferRequest{
		WalletID:  "DST002",
		Amount:    decimal.RequireFromString("25.75"),
		Narrative: "float top-up",
	})
	require.NoError(t, err)
	assert.Equal(t, "ZQMMOQO", got.Destination.WalletID)
	assert.JSONEq(t, `{"wallet_id":"DST002","amount":"25.75","narrative":"float top-up"}`, string(gw.Last(t).Body))
}

func TestFundMpesaForcesMethodAndCurrency(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/payment/mpesa-stk-push/", http.StatusOK,
		`{"invoice":null,"customer":null,"payment_link":null,"refundable":false,"created_at":"2024-01-15T09:00:00+03:00","updated_at":"2024-01-15T09:00:00+03:00"}`)

	req := &wallets.FundMpesaRequest{
		Amount:      decimal.NewFromInt(100),
		Method:      intasend.ProviderCardPayment,
		Currency:    intasend.USD,
		WalletID:    "ZQMMOQO",
		PhoneNumber: "254712345678",
	}
	_, err := client.FundMpesa(context.Background(), req)
	require.NoError(t, err)

	var sent map[string]any
	gw.Last(t).Decode(t, &sent)
	assert.Equal(t, "MPESA", sent["method"])
	assert.Equal(t, "KES", sent["currency"])
	assert.Equal(t, intasend.USD, req.Currency)
	assert.Equal(t, intasend.ProviderCardPayment, req.Method)
}

func TestFundCheckoutUsesPublicKey(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/checkout/", http.StatusOK,
		`{"id":"chk-9","url":"https://sandbox.intasend.com/checkout/chk-9/express/","signature":"s9","amount":"300.00","currency":"USD","paid":false}`)

	got, err := client.FundCheckout(context.Background(), &wallets.FundCheckoutRequest{
		Amount:   decimal.NewFromInt(300),
		WalletID: "ZQMMOQO",
		Currency: intasend.USD,
	})
	require.NoError(t, err)
	assert.Equal(t, "chk-9", got.ID)

	req := gw.Last(t)
	assert.Equal(t, "pub", req.PublicKey)
	assert.Empty(t, req.Bearer)
}
