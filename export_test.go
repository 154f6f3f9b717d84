package sotrapay_test

// Everything in here goes through the root package's exported names only, the
// way an embedding UI layer would: no internal imports.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sotrapay"
)

type embedderBackend struct {
	balance decimal.Decimal
}

func (b *embedderBackend) GetBalance(ctx context.Context) (*sotrapay.WalletBalance, error) {
	return &sotrapay.WalletBalance{Balance: b.balance, FetchedAt: time.Now()}, nil
}

func (b *embedderBackend) GenerateQR(ctx context.Context, amount decimal.Decimal, walletID string, expiresInMinutes int) (*sotrapay.PaymentQRToken, error) {
	return &sotrapay.PaymentQRToken{
		Token:     "tok_1",
		Amount:    amount,
		WalletID:  walletID,
		ExpiresAt: time.Now().Add(time.Duration(expiresInMinutes) * time.Minute),
		Status:    sotrapay.TokenStatusActive,
	}, nil
}

func (b *embedderBackend) ValidateQR(ctx context.Context, token string) (*sotrapay.PaymentQRToken, error) {
	return &sotrapay.PaymentQRToken{Token: token, Status: sotrapay.TokenStatusActive}, nil
}

func (b *embedderBackend) CancelQR(ctx context.Context, token string) error { return nil }

func (b *embedderBackend) ListActiveQR(ctx context.Context, walletID string) ([]sotrapay.PaymentQRToken, error) {
	return nil, nil
}

func (b *embedderBackend) ResolveByUsername(ctx context.Context, username string) (*sotrapay.CounterpartyIdentity, error) {
	return &sotrapay.CounterpartyIdentity{ID: "u-2", Username: username}, nil
}

func (b *embedderBackend) ResolveByPhone(ctx context.Context, phone string) (*sotrapay.CounterpartyIdentity, error) {
	return &sotrapay.CounterpartyIdentity{ID: "u-2", PhoneNumber: phone}, nil
}

func (b *embedderBackend) ResolveByID(ctx context.Context, id string) (*sotrapay.CounterpartyIdentity, error) {
	return &sotrapay.CounterpartyIdentity{ID: id}, nil
}

func (b *embedderBackend) ScanQR(ctx context.Context, token string) (*sotrapay.CounterpartyIdentity, error) {
	return &sotrapay.CounterpartyIdentity{ID: "u-2", DisplayName: "Fatou"}, nil
}

func (b *embedderBackend) TransferFunds(ctx context.Context, req sotrapay.TransferRequest, idempotencyKey string) (*sotrapay.TransferResult, error) {
	fee := decimal.NewFromInt(250)
	return &sotrapay.TransferResult{
		TransactionID: "txn_1",
		Amount:        req.Amount,
		Fee:           fee,
		NetAmount:     req.Amount.Sub(fee),
		Status:        sotrapay.TransferStatusCompleted,
	}, nil
}

func (b *embedderBackend) GetTransactionHistory(ctx context.Context, limit, offset int) ([]sotrapay.HistoryEntry, error) {
	return nil, nil
}

func embedderToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":   "u-1",
		"username":  "fode",
		"phone":     "+224621234567",
		"wallet_id": "w-1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestEmbedderBuildsClientFromRootTypesOnly(t *testing.T) {
	cfg := sotrapay.Config{
		APIBaseURL:             "http://localhost:0",
		RequestTimeout:         time.Second,
		MinPaymentAmount:       decimal.NewFromInt(1000),
		DefaultQRExpiryMinutes: 15,
		Currency:               "GNF",
		CurrencyExponent:       0,
		MinPhoneDigits:         8,
	}

	client, err := sotrapay.New(embedderToken(t),
		sotrapay.WithConfig(cfg),
		sotrapay.WithBackend(&embedderBackend{balance: decimal.NewFromInt(50000)}),
	)
	require.NoError(t, err)

	recipient, err := client.Resolver().Resolve(context.Background(), sotrapay.PhoneRef("655 11 22 33"))
	require.NoError(t, err)

	receipt, err := client.Payments().Confirm(context.Background(), sotrapay.ConfirmRequest{
		Counterparty: recipient,
		Amount:       decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, sotrapay.RouteReceipt, sotrapay.RouteFor(err))
	assert.Equal(t, sotrapay.TransferStatusCompleted, receipt.Status)

	b := client.Receipts().Breakdown(sotrapay.TransferResult{
		Amount:    receipt.Amount,
		Fee:       receipt.Fee,
		NetAmount: receipt.NetAmount,
	})
	assert.False(t, b.Mismatch)
}

func TestEmbedderChecksSentinelsAtRoot(t *testing.T) {
	client, err := sotrapay.New(embedderToken(t),
		sotrapay.WithBackend(&embedderBackend{balance: decimal.NewFromInt(1000)}),
	)
	require.NoError(t, err)

	_, err = client.Transfers().SearchByPhone(context.Background(), "621 23 45 67")
	assert.True(t, errors.Is(err, sotrapay.ErrSelfTransfer))

	_, err = client.Payments().Confirm(context.Background(), sotrapay.ConfirmRequest{
		Counterparty: &sotrapay.CounterpartyIdentity{ID: "u-2"},
		Amount:       decimal.NewFromInt(5000),
	})
	assert.True(t, errors.Is(err, sotrapay.ErrInsufficientBalance))
	assert.Equal(t, sotrapay.RouteRecharge, sotrapay.RouteFor(err))
}

func TestEmbedderRunsCountdownFromRoot(t *testing.T) {
	token := &sotrapay.PaymentQRToken{
		Token:     "tok_1",
		ExpiresAt: time.Now().Add(-time.Second),
		Status:    sotrapay.TokenStatusActive,
	}

	cd := sotrapay.NewCountdown(token)
	expired := make(chan struct{})
	cd.Start(func(remaining time.Duration) {}, func() { close(expired) })
	defer cd.Stop()

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never expired")
	}
	assert.Equal(t, "0:00", sotrapay.FormatRemaining(0))
}
