// Package transfer orchestrates peer-to-peer sends where the recipient is
// found by phone number or QR scan before the amount is entered.
package transfer

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sotrapay/internal/config"
	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/services/payment"
	"sotrapay/internal/services/resolver"
	"sotrapay/internal/utils"
	"sotrapay/internal/validation"
)

type service struct {
	resolver  Resolver
	confirmer Confirmer
	session   Identity
	cfg       config.Config
	log       zerolog.Logger
}

// NewService creates a transfer orchestrator.
func NewService(res Resolver, confirmer Confirmer, session Identity, cfg config.Config, log zerolog.Logger) Service {
	if res == nil {
		panic("resolver is required")
	}
	if confirmer == nil {
		panic("confirmer is required")
	}
	if session == nil {
		panic("session is required")
	}
	return &service{
		resolver:  res,
		confirmer: confirmer,
		session:   session,
		cfg:       cfg,
		log:       log.With().Str("component", "transfer").Logger(),
	}
}

// SearchByPhone resolves a recipient from an explicitly submitted phone
// number. Too-short numbers and the caller's own number are rejected without
// a network round trip.
func (s *service) SearchByPhone(ctx context.Context, phone string) (*models.CounterpartyIdentity, error) {
	if err := validation.ValidatePhone(phone, s.cfg.MinPhoneDigits); err != nil {
		return nil, err
	}
	if s.session.IsOwnPhone(phone) {
		return nil, domainErrors.ErrSelfTransfer
	}
	return s.resolver.Resolve(ctx, resolver.PhoneRef(phone))
}

// ScanRecipient resolves a recipient from a scanned QR payload, then
// re-checks the self-transfer guard: the payload may resolve to a phone
// number the client had never seen.
func (s *service) ScanRecipient(ctx context.Context, payload string) (*models.CounterpartyIdentity, error) {
	identity, err := s.resolver.Resolve(ctx, resolver.QRRef(payload))
	if err != nil {
		return nil, err
	}
	if s.session.IsOwnIdentity(identity) {
		return nil, domainErrors.ErrSelfTransfer
	}
	return identity, nil
}

// Send submits the transfer after the user's explicit confirmation step.
// Logs carry only the masked recipient name.
func (s *service) Send(ctx context.Context, recipient *models.CounterpartyIdentity, amount decimal.Decimal, description string) (*payment.Receipt, error) {
	if recipient == nil {
		return nil, domainErrors.ErrNoRecipient
	}

	s.log.Info().
		Str("recipient", utils.MaskName(recipient.DisplayName)).
		Str("amount", amount.String()).
		Msg("transfer send requested")

	receipt, err := s.confirmer.Confirm(ctx, payment.ConfirmRequest{
		Counterparty: recipient,
		Amount:       amount,
		Description:  description,
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
