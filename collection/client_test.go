package collection_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/collection"
	"github.com/congo-pay/intasend-go/internal/gatewaytest"
)

const invoiceJSON = `{
	"invoice_id": "NR5XKGY",
	"state": "PENDING",
	"provider": "M-PESA",
	"charges": "0.00",
	"net_amount": "10.00",
	"currency": "KES",
	"value": "10.00",
	"account": "254712345678",
	"api_ref": "order-77",
	"mpesa_reference": null,
	"host": "https://sandbox.intasend.com",
	"card_info": {"bin_country": null, "card_type": null},
	"retry_count": 0,
	"failed_reason": null,
	"failed_code": null,
	"failed_code_link": null,
	"created_at": "2024-02-10T12:00:00.510346+03:00",
	"updated_at": "2024-02-10T12:00:00.510346+03:00"
}`

func newClient(t *testing.T) (*collection.Client, *gatewaytest.Server) {
	t.Helper()
	gw := gatewaytest.New(t)
	b := intasend.NewBackend("pub", "secret", true, intasend.WithBaseURL(gw.URL))
	return collection.New(b), gw
}

func TestMpesaSTKPush(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/payment/mpesa-stk-push/", http.StatusOK, `{
		"invoice": `+invoiceJSON+`,
		"customer": {
			"customer_id": "KZ8Y3QD",
			"phone_number": "254712345678",
			"email": null,
			"first_name": null,
			"last_name": null,
			"country": null,
			"zipcode": null,
			"provider": "M-PESA",
			"created_at": "2024-02-10T12:00:00+03:00",
			"updated_at": "2024-02-10T12:00:00+03:00"
		},
		"payment_link": null,
		"refundable": false,
		"created_at": "2024-02-10T12:00:00+03:00",
		"updated_at": "2024-02-10T12:00:00+03:00"
	}`)

	got, err := client.MpesaSTKPush(context.Background(), &collection.STKPushRequest{
		Amount:      decimal.NewFromInt(10),
		PhoneNumber: "254712345678",
		APIRef:      "order-77",
	})
	require.NoError(t, err)
	require.NotNil(t, got.Invoice)
	assert.Equal(t, "NR5XKGY", got.Invoice.InvoiceID)
	assert.Equal(t, intasend.InvoicePending, got.Invoice.State)
	assert.False(t, got.Invoice.State.Terminal())
	require.NotNil(t, got.Customer)
	assert.Equal(t, "KZ8Y3QD", got.Customer.CustomerID)
	assert.Nil(t, got.PaymentLink)

	req := gw.Last(t)
	assert.Equal(t, "secret", req.Bearer)
	assert.JSONEq(t, `{"amount":"10","phone_number":"254712345678","api_ref":"order-77"}`, string(req.Body))
}

func TestMpesaSTKPushValidatesPhone(t *testing.T) {
	client, gw := newClient(t)

	_, err := client.MpesaSTKPush(context.Background(), &collection.STKPushRequest{
		Amount:      decimal.NewFromInt(10),
		PhoneNumber: "07-12",
	})
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)
	assert.Empty(t, gw.Requests())
}

func TestStatus(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/payment/status/", http.StatusOK, `{
		"invoice": `+invoiceJSON+`,
		"meta": {
			"id": "a1b2c3",
			"customer_comment": null,
			"payment_link": null,
			"customer": null,
			"created_at": "2024-02-10T12:00:00+03:00",
			"updated_at": "2024-02-10T12:01:00+03:00"
		}
	}`)

	got, err := client.Status(context.Background(), &collection.StatusRequest{InvoiceID: "NR5XKGY"})
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3", got.Meta.ID)
	assert.Nil(t, got.Meta.PaymentLink)
	assert.JSONEq(t, `{"invoice_id":"NR5XKGY"}`, string(gw.Last(t).Body))
}

func TestStatusSurfacesGatewayErrors(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/payment/status/", http.StatusBadRequest,
		`{"type":"client_error","errors":[{"code":"not_found","detail":"Invoice not found","attr":"invoice_id"}]}`)

	_, err := client.Status(context.Background(), &collection.StatusRequest{InvoiceID: "nope"})
	require.ErrorIs(t, err, intasend.ErrBadRequest)

	var apiErr *intasend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invoice_id", apiErr.Errors[0].Attr)
}
