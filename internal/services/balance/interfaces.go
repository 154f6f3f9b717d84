package balance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sotrapay/internal/models"
)

// Fetcher fetches the authoritative balance from the backend.
type Fetcher interface {
	GetBalance(ctx context.Context) (*models.WalletBalance, error)
}

// Service is the balance oracle: a refreshable, read-only view of the wallet
// balance. Higher components read it but never mutate it.
type Service interface {
	Refresh(ctx context.Context) (decimal.Decimal, error)
	Current() (decimal.Decimal, time.Time, bool)
	CanCover(amount decimal.Decimal) (bool, error)
	Preview(amount decimal.Decimal) (models.BalancePreview, error)
}
