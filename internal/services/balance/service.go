package balance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

type service struct {
	fetcher Fetcher
	log     zerolog.Logger

	mu        sync.RWMutex
	snapshot  decimal.Decimal
	fetchedAt time.Time
	fetched   bool
}

// NewService creates a balance oracle.
func NewService(fetcher Fetcher, log zerolog.Logger) Service {
	if fetcher == nil {
		panic("balance fetcher is required")
	}
	return &service{
		fetcher: fetcher,
		log:     log.With().Str("component", "balance").Logger(),
	}
}

// Refresh fetches the authoritative balance and stores it as the new
// snapshot. It is the only way the snapshot changes.
func (s *service) Refresh(ctx context.Context) (decimal.Decimal, error) {
	wb, err := s.fetcher.GetBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("refresh balance: %w", err)
	}

	s.mu.Lock()
	s.snapshot = wb.Balance
	s.fetchedAt = wb.FetchedAt
	s.fetched = true
	s.mu.Unlock()

	s.log.Debug().Str("balance", wb.Balance.String()).Msg("balance refreshed")
	return wb.Balance, nil
}

// Current returns the last snapshot. ok is false before the first refresh.
func (s *service) Current() (decimal.Decimal, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.fetchedAt, s.fetched
}

// CanCover reports whether the last fetched balance covers amount. This is a
// UX short-circuit; the backend remains the authority and may still reject.
func (s *service) CanCover(amount decimal.Decimal) (bool, error) {
	current, _, ok := s.Current()
	if !ok {
		return false, domainErrors.ErrBalanceUnknown
	}
	return amount.LessThanOrEqual(current), nil
}

// Preview projects the balance after spending amount. The result is
// display-only and never written back.
func (s *service) Preview(amount decimal.Decimal) (models.BalancePreview, error) {
	current, _, ok := s.Current()
	if !ok {
		return models.BalancePreview{}, domainErrors.ErrBalanceUnknown
	}
	return models.BalancePreview{
		Current:   current,
		Amount:    amount,
		Remaining: current.Sub(amount),
	}, nil
}
