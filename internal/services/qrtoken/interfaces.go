package qrtoken

import (
	"context"

	"github.com/shopspring/decimal"

	"sotrapay/internal/models"
)

// Gateway is the backend surface the token lifecycle needs.
type Gateway interface {
	GenerateQR(ctx context.Context, amount decimal.Decimal, walletID string, expiresInMinutes int) (*models.PaymentQRToken, error)
	ValidateQR(ctx context.Context, token string) (*models.PaymentQRToken, error)
	CancelQR(ctx context.Context, token string) error
	ListActiveQR(ctx context.Context, walletID string) ([]models.PaymentQRToken, error)
}

// WalletIDProvider supplies the wallet the session operates on.
type WalletIDProvider interface {
	WalletID() string
}

// Service is the payment token lifecycle manager.
type Service interface {
	Generate(ctx context.Context, amount decimal.Decimal, expiresInMinutes int) (*models.PaymentQRToken, error)
	Cancel(ctx context.Context, token string) error
	ListActive(ctx context.Context) ([]models.PaymentQRToken, error)
	Status(ctx context.Context, token string) (*models.PaymentQRToken, error)
}
