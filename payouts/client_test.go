package payouts_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/internal/gatewaytest"
	"github.com/congo-pay/intasend-go/payouts"
)

const initiatedJSON = `{
	"file_id": "YOGRJ2D",
	"device_id": null,
	"tracking_id": "9f6c4a41-1a0a-4e1e-8f8b-2a3f0b2d7e11",
	"batch_reference": "batch-42",
	"status": "Preview and approve",
	"status_code": "BP103",
	"nonce": "a1c9f2",
	"wallet": {
		"wallet_id": "ZQMMOQO",
		"label": "default",
		"can_disburse": true,
		"currency": "KES",
		"wallet_type": "SETTLEMENT",
		"current_balance": "5000.00",
		"available_balance": "5000.00",
		"updated_at": "2024-01-15T08:30:00+03:00"
	},
	"transactions": [{
		"status": "Pending",
		"status_code": "TP101",
		"request_reference_id": "ref-1",
		"name": "Jane Doe",
		"account": "254712345678",
		"id_number": null,
		"bank_code": null,
		"amount": "150.00",
		"narrative": "Salary"
	}],
	"charge_estimate": "10.00",
	"total_amount_estimate": "160.00",
	"total_amount": "150.00",
	"transactions_count": 1
}`

func newClient(t *testing.T) (*payouts.Client, *gatewaytest.Server) {
	t.Helper()
	gw := gatewaytest.New(t)
	b := intasend.NewBackend("pub", "secret", true, intasend.WithBaseURL(gw.URL))
	return payouts.New(b), gw
}

func sampleRequest() *payouts.Request {
	return &payouts.Request{
		Currency:       intasend.KES,
		BatchReference: "batch-42",
		Transactions: []payouts.Transaction{
			{Name: "Jane Doe", Account: "254712345678", Amount: decimal.NewFromInt(150), Narrative: "Salary"},
		},
	}
}

func TestProviderHelpersSetProvider(t *testing.T) {
	cases := []struct {
		name string
		call func(*payouts.Client, context.Context, *payouts.Request) (*payouts.Payout, error)
		want string
	}{
		{"mpesa b2c", (*payouts.Client).MpesaB2C, "MPESA-B2C"},
		{"mpesa b2b", (*payouts.Client).MpesaB2B, "MPESA-B2B"},
		{"bank", (*payouts.Client).Bank, "PESALINK"},
		{"intasend", (*payouts.Client).IntaSend, "INTASEND"},
		{"airtime", (*payouts.Client).Airtime, "AIRTIME"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, gw := newClient(t)
			gw.Handle(http.MethodPost, "/api/v1/send-money/initiate/", http.StatusOK, initiatedJSON)

			req := sampleRequest()
			got, err := tc.call(client, context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "a1c9f2", *got.Nonce)

			var sent map[string]any
			gw.Last(t).Decode(t, &sent)
			assert.Equal(t, tc.want, sent["provider"])
			assert.Empty(t, req.Provider)
		})
	}
}

func TestInitiateDecodesPayout(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/send-money/initiate/", http.StatusOK, initiatedJSON)

	got, err := client.Initiate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "YOGRJ2D", *got.FileID)
	assert.Nil(t, got.DeviceID)
	require.NotNil(t, got.Wallet)
	assert.Equal(t, intasend.WalletSettlement, got.Wallet.WalletType)
	require.Len(t, got.Transactions, 1)
	assert.True(t, got.TotalAmountEstimate.Valid)
	assert.True(t, got.TotalAmountEstimate.Decimal.Equal(decimal.NewFromInt(160)))
	assert.Equal(t, 1, *got.TransactionsCount)
	assert.Equal(t, "secret", gw.Last(t).Bearer)
}

func TestInitiateRequiresTransactions(t *testing.T) {
	client, gw := newClient(t)

	req := sampleRequest()
	req.Transactions = nil
	_, err := client.MpesaB2C(context.Background(), req)
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)

	req = sampleRequest()
	req.Transactions[0].Amount = decimal.Zero
	_, err = client.Bank(context.Background(), req)
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)

	_, err = client.Airtime(context.Background(), nil)
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)

	assert.Empty(t, gw.Requests())
}

func TestApproveInitiated(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/send-money/initiate/", http.StatusOK, initiatedJSON)
	gw.Handle(http.MethodPost, "/api/v1/send-money/approve/", http.StatusOK,
		`{"file_id":"YOGRJ2D","tracking_id":"9f6c4a41-1a0a-4e1e-8f8b-2a3f0b2d7e11","status":"Processing","status_code":"BP104"}`)

	initiated, err := client.MpesaB2C(context.Background(), sampleRequest())
	require.NoError(t, err)

	approved, err := client.ApproveInitiated(context.Background(), initiated)
	require.NoError(t, err)
	assert.Equal(t, "BP104", *approved.StatusCode)

	var sent payouts.ApprovalRequest
	gw.Last(t).Decode(t, &sent)
	assert.Equal(t, "9f6c4a41-1a0a-4e1e-8f8b-2a3f0b2d7e11", sent.TrackingID)
	assert.Equal(t, "a1c9f2", sent.Nonce)
	assert.Equal(t, "batch-42", sent.BatchReference)
	require.Len(t, sent.Transactions, 1)
}

func TestApproveInitiatedNeedsNonce(t *testing.T) {
	client, gw := newClient(t)

	tracking := "t-1"
	_, err := client.ApproveInitiated(context.Background(), &payouts.Payout{TrackingID: &tracking})
	require.ErrorIs(t, err, intasend.ErrInvalidRequest)
	assert.Empty(t, gw.Requests())
}

func TestStatusAndCancel(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodPost, "/api/v1/send-money/status/", http.StatusOK, `{"tracking_id":"t-1","status":"Completed","status_code":"BC100"}`)
	gw.Handle(http.MethodPost, "/api/v1/send-money/cancel/", http.StatusOK, `{"file_id":"F1","status":"Cancelled","status_code":"BF102"}`)

	st, err := client.Status(context.Background(), &payouts.StatusRequest{TrackingID: "t-1"})
	require.NoError(t, err)
	assert.Equal(t, "BC100", *st.StatusCode)
	assert.JSONEq(t, `{"tracking_id":"t-1"}`, string(gw.Last(t).Body))

	cancelled, err := client.Cancel(context.Background(), &payouts.CancelRequest{FileID: "F1"})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", *cancelled.Status)
	assert.JSONEq(t, `{"file_id":"F1"}`, string(gw.Last(t).Body))
}

func TestBankCodesKEUsesPublicKey(t *testing.T) {
	client, gw := newClient(t)
	gw.Handle(http.MethodGet, "/api/v1/send-money/bank-codes/ke/", http.StatusOK,
		`[{"bank_name":"Equity Bank","bank_code":"68"},{"bank_name":"KCB","bank_code":"1"}]`)

	codes, err := client.BankCodesKE(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, payouts.BankCode{BankName: "Equity Bank", BankCode: "68"}, codes[0])

	req := gw.Last(t)
	assert.Equal(t, "pub", req.PublicKey)
	assert.Empty(t, req.Bearer)
}
