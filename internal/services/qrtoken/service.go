package qrtoken

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sotrapay/internal/config"
	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/validation"
)

type service struct {
	gateway Gateway
	session WalletIDProvider
	cfg     config.Config
	log     zerolog.Logger
}

// NewService creates a token lifecycle manager.
func NewService(gateway Gateway, session WalletIDProvider, cfg config.Config, log zerolog.Logger) Service {
	if gateway == nil {
		panic("gateway is required")
	}
	if session == nil {
		panic("session is required")
	}
	return &service{
		gateway: gateway,
		session: session,
		cfg:     cfg,
		log:     log.With().Str("component", "qrtoken").Logger(),
	}
}

// Generate mints a payment token for the session's wallet. Amounts below the
// platform minimum are rejected locally, before any network call.
func (s *service) Generate(ctx context.Context, amount decimal.Decimal, expiresInMinutes int) (*models.PaymentQRToken, error) {
	if err := validation.ValidateAmount(amount, s.cfg.CurrencyExponent); err != nil {
		return nil, err
	}
	if err := validation.ValidateMinimum(amount, s.cfg.MinPaymentAmount); err != nil {
		return nil, err
	}
	if expiresInMinutes <= 0 {
		expiresInMinutes = s.cfg.DefaultQRExpiryMinutes
	}

	token, err := s.gateway.GenerateQR(ctx, amount, s.session.WalletID(), expiresInMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info().
		Str("token", token.Token).
		Str("amount", token.Amount.String()).
		Time("expires_at", token.ExpiresAt).
		Msg("payment token generated")
	return token, nil
}

// Cancel revokes an active token. Cancelling a token that is already terminal
// server-side comes back as ErrTokenNotCancellable: the caller drops it from
// the active list on the next refresh and moves on.
func (s *service) Cancel(ctx context.Context, token string) error {
	err := s.gateway.CancelQR(ctx, token)
	if err == nil {
		s.log.Info().Str("token", token).Msg("payment token cancelled")
		return nil
	}
	if errors.Is(err, domainErrors.ErrTokenNotCancellable) {
		s.log.Debug().Str("token", token).Msg("token already terminal, cancel is a no-op")
		return domainErrors.ErrTokenNotCancellable
	}
	return fmt.Errorf("cancel token: %w", err)
}

// ListActive re-fetches the wallet's active tokens. Server truth replaces
// whatever local countdown state says.
func (s *service) ListActive(ctx context.Context) ([]models.PaymentQRToken, error) {
	tokens, err := s.gateway.ListActiveQR(ctx, s.session.WalletID())
	if err != nil {
		return nil, fmt.Errorf("list active tokens: %w", err)
	}
	return tokens, nil
}

// Status fetches a token's authoritative state.
func (s *service) Status(ctx context.Context, token string) (*models.PaymentQRToken, error) {
	return s.gateway.ValidateQR(ctx, token)
}
