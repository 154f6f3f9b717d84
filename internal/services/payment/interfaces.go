package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"sotrapay/internal/models"
)

// Submitter submits the transfer to the backend.
type Submitter interface {
	TransferFunds(ctx context.Context, req models.TransferRequest, idempotencyKey string) (*models.TransferResult, error)
}

// BalanceOracle gates submission on the latest fetched balance.
type BalanceOracle interface {
	Refresh(ctx context.Context) (decimal.Decimal, error)
	CanCover(amount decimal.Decimal) (bool, error)
	Preview(amount decimal.Decimal) (models.BalancePreview, error)
}

// Identity is the self-payment guard's view of the session.
type Identity interface {
	IsOwnID(id string) bool
}

// Service is the payment confirmation controller.
type Service interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*Receipt, error)
	Preview(amount decimal.Decimal) (models.BalancePreview, error)
}
