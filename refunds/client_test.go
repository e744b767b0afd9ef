package refunds_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/internal/gatewaytest"
	"github.com/congo-pay/intasend-go/refunds"
)

const refundJSON = `{
	"chargeback_id": "JRO97YK",
	"session_id": "c2b5d8e0",
	"transaction": {
		"transaction_id": "TX77",
		"amount": "10.00",
		"currency": "KES",
		"value": "10.00",
		"running_balance": "990.00",
		"narrative": "Refund",
		"trans_type": "CHARGE",
		"status": "CHARGEBACK-PENDING",
		"created_at": "2024-04-01T10:00:00+03:00",
		"updated_at": "2024-04-01T10:00:00+03:00"
	},
	"amount": "10.00",
	"status": "PENDING",
	"reason": "Unavailable service",
	"reason_details": "The service was unavailable",
	"resolution": null,
	"staff_created": false,
	"created_at": "2024-04-01T10:00:00+03:00",
	"updated_at": "2024-04-01T10:00:00+03:00"
}`

func newClient(t *testing.T) (*refunds.Client, *gatewaytest.Server) {
	t.Helper()
	gw := gatewaytest.New(t)
	b := intasend.NewBackend("pub", "secret", true, intasend.WithBaseURL(gw.URL))
	return refunds.New(b), gw
}

func TestList(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/chargebacks/", http.StatusOK,
		`{"count":2,"next":"`+gw.URL+`/api/v1/chargebacks/?page=2","previous":null,"results":[`+refundJSON+`]}`)
	gw.Handle(http.MethodGet, "/api/v1/chargebacks/?page=2", http.StatusOK,
		`{"count":2,"next":null,"previous":"`+gw.URL+`/api/v1/chargebacks/","results":[`+refundJSON+`]}`)

	page, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	r := page.Results[0]
	assert.Equal(t, "JRO97YK", r.ChargebackID)
	assert.Equal(t, intasend.ReasonUnavailableService, r.Reason)
	assert.Equal(t, intasend.StatusChargebackPending, r.Transaction.Status)
	assert.True(t, page.HasNext())

	next, err := client.ListNext(context.Background(), page)
	require.NoError(t, err)
	assert.False(t, next.HasNext())
	assert.Len(t, gw.Requests(), 2)
}

func TestCreate(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/chargebacks/", http.StatusCreated, refundJSON)

	got, err := client.Create(context.Background(), &refunds.Request{
		InvoiceID:     "YVB845R",
		Amount:        decimal.New(1000, -2),
		Reason:        intasend.ReasonUnavailableService,
		ReasonDetails: "The service was unavailable",
	})
	require.NoError(t, err)
	assert.Equal(t, "JRO97YK", got.ChargebackID)

	assert.JSONEq(t,
		`{"invoice":"YVB845R","amount":"10","reason":"Unavailable service","reason_details":"The service was unavailable"}`,
		string(gw.Last(t).Body))
}

func TestCreateRejectsUnknownReason(t *testing.T) {
	client, gw := newClient(t)

	_, err := client.Create(context.Background(), &refunds.Request{
		InvoiceID: "YVB845R",
		Amount:    decimal.NewFromInt(10),
		Reason:    "Changed my mind",
	})
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)
	assert.Empty(t, gw.Requests())
}

func TestGet(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/chargebacks/JRO97YK/", http.StatusOK, refundJSON)

	got, err := client.Get(context.Background(), "JRO97YK")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(10)))

	_, err = client.Get(context.Background(), "MISSING")
	require.ErrorIs(t, err, intasend.ErrNotFound)
}
