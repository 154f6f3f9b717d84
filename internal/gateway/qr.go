package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

type generateQRRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	WalletID         string          `json:"wallet_id"`
	ExpiresInMinutes int             `json:"expires_in_minutes"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

// GenerateQR asks the backend to mint a payment token. ExpiresAt is assigned
// server-side.
func (c *Client) GenerateQR(ctx context.Context, amount decimal.Decimal, walletID string, expiresInMinutes int) (*models.PaymentQRToken, error) {
	req := generateQRRequest{
		Amount:           amount,
		WalletID:         walletID,
		ExpiresInMinutes: expiresInMinutes,
	}
	var token models.PaymentQRToken
	if err := c.do(ctx, fiber.MethodPost, "/qr/generate", req, nil, &token); err != nil {
		return nil, fmt.Errorf("generate QR: %w", err)
	}
	return &token, nil
}

// ValidateQR fetches the authoritative state of a token.
func (c *Client) ValidateQR(ctx context.Context, token string) (*models.PaymentQRToken, error) {
	var out models.PaymentQRToken
	err := c.do(ctx, fiber.MethodPost, "/qr/validate", tokenRequest{Token: token}, nil, &out)
	if errors.Is(err, errNotFound) {
		return nil, domainErrors.ErrInvalidQR
	}
	if err != nil {
		return nil, fmt.Errorf("validate QR: %w", err)
	}
	return &out, nil
}

// CancelQR cancels an active token. The backend rejects terminal tokens; that
// rejection is surfaced as ErrTokenNotCancellable so callers can treat it as
// a no-op rather than a failure.
func (c *Client) CancelQR(ctx context.Context, token string) error {
	err := c.do(ctx, fiber.MethodPost, "/qr/cancel", tokenRequest{Token: token}, nil, nil)
	if err == nil {
		return nil
	}
	if errors.Is(err, errNotFound) {
		return domainErrors.ErrInvalidQR
	}
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "QR_EXPIRED", "QR_REDEEMED", "QR_CANCELLED", "TOKEN_NOT_CANCELLABLE":
			return domainErrors.ErrTokenNotCancellable
		}
	}
	return fmt.Errorf("cancel QR: %w", err)
}

// ListActiveQR lists the wallet's currently active tokens.
func (c *Client) ListActiveQR(ctx context.Context, walletID string) ([]models.PaymentQRToken, error) {
	var tokens []models.PaymentQRToken
	if err := c.do(ctx, fiber.MethodGet, "/qr/active?wallet_id="+url.QueryEscape(walletID), nil, nil, &tokens); err != nil {
		return nil, fmt.Errorf("list active QR: %w", err)
	}
	return tokens, nil
}

// ScanQR resolves a redemption token to the identity behind it.
func (c *Client) ScanQR(ctx context.Context, token string) (*models.CounterpartyIdentity, error) {
	var identity models.CounterpartyIdentity
	err := c.do(ctx, fiber.MethodPost, "/qr/scan", tokenRequest{Token: token}, nil, &identity)
	if errors.Is(err, errNotFound) {
		return nil, domainErrors.ErrCounterpartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan QR: %w", err)
	}
	return &identity, nil
}
