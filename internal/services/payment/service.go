// Package payment is the confirmation controller: it turns a resolved
// counterparty plus a confirmed amount into at most one transfer submission.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sotrapay/internal/config"
	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/utils"
	"sotrapay/internal/validation"
)

type service struct {
	submitter Submitter
	oracle    BalanceOracle
	session   Identity
	cfg       config.Config
	log       zerolog.Logger

	// inFlight is the single-flight guard: set before the submission call,
	// cleared in a defer regardless of outcome. It protects against rapid
	// double taps on the same control, not against distributed duplicates —
	// those are the server's job, helped by the idempotency key.
	inFlight atomic.Bool
}

// NewService creates a payment confirmation controller.
func NewService(submitter Submitter, oracle BalanceOracle, session Identity, cfg config.Config, log zerolog.Logger) Service {
	if submitter == nil {
		panic("submitter is required")
	}
	if oracle == nil {
		panic("balance oracle is required")
	}
	if session == nil {
		panic("session is required")
	}
	return &service{
		submitter: submitter,
		oracle:    oracle,
		session:   session,
		cfg:       cfg,
		log:       log.With().Str("component", "payment").Logger(),
	}
}

// Confirm runs the terminal step: sufficiency short-circuit, single-flight
// submission, outcome routing. On failure the caller stays on the
// confirmation step and may retry; the guard is already cleared.
func (s *service) Confirm(ctx context.Context, req ConfirmRequest) (*Receipt, error) {
	if req.Counterparty == nil || req.Counterparty.ID == "" {
		return nil, domainErrors.ErrNoRecipient
	}
	if s.session.IsOwnID(req.Counterparty.ID) {
		return nil, domainErrors.ErrSelfTransfer
	}
	if err := validation.ValidateAmount(req.Amount, s.cfg.CurrencyExponent); err != nil {
		return nil, err
	}

	if err := s.checkSufficiency(ctx, req.Amount); err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		// Duplicate tap while a submission is pending. Logged, not an error
		// the UI should surface.
		s.log.Debug().Msg("confirm ignored, submission already in flight")
		return nil, domainErrors.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	key := uuid.NewString()
	result, err := s.submitter.TransferFunds(ctx, models.TransferRequest{
		ToUserID:    req.Counterparty.ID,
		Amount:      req.Amount,
		Description: s.description(req),
	}, key)
	if err != nil {
		s.log.Warn().
			Str("counterparty", utils.MaskName(req.Counterparty.DisplayName)).
			Err(err).
			Msg("transfer submission failed")
		return nil, err
	}

	// The local balance is stale now; re-fetch rather than decrementing.
	if _, err := s.oracle.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("post-transfer balance refresh failed")
	}

	s.log.Info().
		Str("transaction_id", result.TransactionID).
		Str("counterparty", utils.MaskName(req.Counterparty.DisplayName)).
		Str("amount", req.Amount.String()).
		Msg("transfer completed")

	return &Receipt{
		TransactionID:        result.TransactionID,
		Reference:            result.Reference,
		Amount:               result.Amount,
		Fee:                  result.Fee,
		NetAmount:            result.NetAmount,
		CounterpartyUsername: req.Counterparty.Username,
		Timestamp:            time.Now(),
		Status:               models.TransferStatusCompleted,
	}, nil
}

// checkSufficiency compares the amount against the latest fetched balance,
// fetching once if the oracle has never been primed. Insufficient funds stop
// the flow before any transfer call.
func (s *service) checkSufficiency(ctx context.Context, amount decimal.Decimal) error {
	ok, err := s.oracle.CanCover(amount)
	if errors.Is(err, domainErrors.ErrBalanceUnknown) {
		if _, err := s.oracle.Refresh(ctx); err != nil {
			return fmt.Errorf("prime balance: %w", err)
		}
		ok, err = s.oracle.CanCover(amount)
	}
	if err != nil {
		return err
	}
	if !ok {
		return domainErrors.ErrInsufficientBalance
	}
	return nil
}

// Preview exposes the oracle's display-only projection for the confirmation
// screen.
func (s *service) Preview(amount decimal.Decimal) (models.BalancePreview, error) {
	return s.oracle.Preview(amount)
}

func (s *service) description(req ConfirmRequest) string {
	if req.Description != "" {
		return req.Description
	}
	if req.TransportType != "" {
		return "fare payment (" + req.TransportType + ")"
	}
	return ""
}
