package sotrapay

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sotrapay/internal/config"
	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

func signedToken(t *testing.T) string {
	t.Helper()
	claims := models.SessionClaims{
		UserID:   "u-1",
		Username: "fode",
		Phone:    "+224621234567",
		WalletID: "w-1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type fakeBackend struct {
	balance    decimal.Decimal
	balanceErr error

	activeTokens []models.PaymentQRToken
	tokensErr    error

	history    []models.HistoryEntry
	historyErr error

	historyLimit int
}

func (f *fakeBackend) GetBalance(ctx context.Context) (*models.WalletBalance, error) {
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return &models.WalletBalance{Balance: f.balance, FetchedAt: time.Now()}, nil
}

func (f *fakeBackend) GenerateQR(ctx context.Context, amount decimal.Decimal, walletID string, expiresInMinutes int) (*models.PaymentQRToken, error) {
	return &models.PaymentQRToken{
		Token:     "tok_1",
		Amount:    amount,
		WalletID:  walletID,
		ExpiresAt: time.Now().Add(time.Duration(expiresInMinutes) * time.Minute),
		Status:    models.TokenStatusActive,
	}, nil
}

func (f *fakeBackend) ValidateQR(ctx context.Context, token string) (*models.PaymentQRToken, error) {
	return &models.PaymentQRToken{Token: token, Status: models.TokenStatusActive}, nil
}

func (f *fakeBackend) CancelQR(ctx context.Context, token string) error { return nil }

func (f *fakeBackend) ListActiveQR(ctx context.Context, walletID string) ([]models.PaymentQRToken, error) {
	if f.tokensErr != nil {
		return nil, f.tokensErr
	}
	return f.activeTokens, nil
}

func (f *fakeBackend) ResolveByUsername(ctx context.Context, username string) (*models.CounterpartyIdentity, error) {
	return &models.CounterpartyIdentity{ID: "u-2", Username: username}, nil
}

func (f *fakeBackend) ResolveByPhone(ctx context.Context, phone string) (*models.CounterpartyIdentity, error) {
	return &models.CounterpartyIdentity{ID: "u-2", PhoneNumber: phone}, nil
}

func (f *fakeBackend) ResolveByID(ctx context.Context, id string) (*models.CounterpartyIdentity, error) {
	return &models.CounterpartyIdentity{ID: id}, nil
}

func (f *fakeBackend) ScanQR(ctx context.Context, token string) (*models.CounterpartyIdentity, error) {
	return &models.CounterpartyIdentity{ID: "u-2", DisplayName: "Fatou"}, nil
}

func (f *fakeBackend) TransferFunds(ctx context.Context, req models.TransferRequest, idempotencyKey string) (*models.TransferResult, error) {
	return &models.TransferResult{
		TransactionID: "txn_1",
		Amount:        req.Amount,
		Fee:           decimal.NewFromInt(250),
		NetAmount:     req.Amount.Sub(decimal.NewFromInt(250)),
		Status:        models.TransferStatusCompleted,
	}, nil
}

func (f *fakeBackend) GetTransactionHistory(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error) {
	f.historyLimit = limit
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func testClientConfig() config.Config {
	return config.Config{
		APIBaseURL:             "http://localhost:0",
		RequestTimeout:         time.Second,
		MinPaymentAmount:       decimal.NewFromInt(1000),
		DefaultQRExpiryMinutes: 15,
		Currency:               "GNF",
		CurrencyExponent:       0,
		MinPhoneDigits:         8,
	}
}

func newTestClient(t *testing.T, backend Backend) *Client {
	t.Helper()
	client, err := New(signedToken(t), WithConfig(testClientConfig()), WithBackend(backend))
	require.NoError(t, err)
	return client
}

func TestNew_InvalidToken(t *testing.T) {
	_, err := New("not-a-jwt", WithBackend(&fakeBackend{}))
	assert.Error(t, err)
}

func TestClient_EndToEndSend(t *testing.T) {
	backend := &fakeBackend{balance: decimal.NewFromInt(50000)}
	client := newTestClient(t, backend)

	recipient, err := client.Transfers().SearchByPhone(context.Background(), "655 11 22 33")
	require.NoError(t, err)

	receipt, err := client.Transfers().Send(context.Background(), recipient, decimal.NewFromInt(5000), "")
	require.NoError(t, err)
	assert.Equal(t, "txn_1", receipt.TransactionID)

	b := client.Receipts().Breakdown(models.TransferResult{
		Amount:    receipt.Amount,
		Fee:       receipt.Fee,
		NetAmount: receipt.NetAmount,
	})
	assert.False(t, b.Mismatch)
	assert.Equal(t, "4750 GNF", b.NetDisplay)
}

func TestRefreshAll(t *testing.T) {
	backend := &fakeBackend{
		balance:      decimal.NewFromInt(50000),
		activeTokens: []models.PaymentQRToken{{Token: "tok_1", Status: models.TokenStatusActive}},
		history:      []models.HistoryEntry{{TransactionID: "txn_1"}},
	}
	client := newTestClient(t, backend)

	res := client.RefreshAll(context.Background())
	require.NoError(t, res.BalanceErr)
	require.NoError(t, res.TokensErr)
	require.NoError(t, res.HistoryErr)
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(50000)))
	assert.Len(t, res.ActiveTokens, 1)
	assert.Len(t, res.History, 1)

	// The oracle was primed by the refresh.
	current, _, known := client.Balance().Current()
	assert.True(t, known)
	assert.True(t, current.Equal(decimal.NewFromInt(50000)))
}

func TestRefreshAll_FailuresAreIndependent(t *testing.T) {
	backend := &fakeBackend{
		balance:   decimal.NewFromInt(50000),
		tokensErr: domainErrors.Backend("INTERNAL", "token listing unavailable"),
		history:   []models.HistoryEntry{{TransactionID: "txn_1"}},
	}
	client := newTestClient(t, backend)

	res := client.RefreshAll(context.Background())
	assert.NoError(t, res.BalanceErr)
	assert.Error(t, res.TokensErr)
	assert.NoError(t, res.HistoryErr)
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(50000)))
	assert.Len(t, res.History, 1)
}

func TestWithHistoryPageSize(t *testing.T) {
	backend := &fakeBackend{balance: decimal.NewFromInt(1000)}
	client, err := New(signedToken(t), WithConfig(testClientConfig()), WithBackend(backend), WithHistoryPageSize(5))
	require.NoError(t, err)

	client.RefreshAll(context.Background())
	assert.Equal(t, 5, backend.historyLimit)
}
