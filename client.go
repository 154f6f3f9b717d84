// Package sotrapay is the payment orchestration core of the transit fare
// wallet client. It wires the backend gateway, the balance oracle and the
// payment flows together behind one Client; the UI layers on top of it and
// owns everything this package deliberately does not: screens, navigation,
// session issuance, notifications.
package sotrapay

import (
	"context"

	"github.com/shopspring/decimal"

	"sotrapay/internal/auth"
	"sotrapay/internal/config"
	"sotrapay/internal/gateway"
	"sotrapay/internal/logger"
	"sotrapay/internal/models"
	"sotrapay/internal/services/balance"
	"sotrapay/internal/services/payment"
	"sotrapay/internal/services/qrtoken"
	"sotrapay/internal/services/receipt"
	"sotrapay/internal/services/resolver"
	"sotrapay/internal/services/transfer"

	"github.com/rs/zerolog"
)

// Backend is the full backend surface the client consumes. The default
// implementation is the HTTP gateway.
type Backend interface {
	balance.Fetcher
	qrtoken.Gateway
	resolver.Gateway
	payment.Submitter
	GetTransactionHistory(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error)
}

const defaultHistoryPageSize = 20

// Client is the assembled payment core for one authenticated session.
type Client struct {
	cfg     config.Config
	log     zerolog.Logger
	session *auth.Session
	backend Backend

	balance   balance.Service
	tokens    qrtoken.Service
	resolver  resolver.Service
	payments  payment.Service
	transfers transfer.Service
	receipts  *receipt.Calculator

	historyPageSize int
}

// New builds a Client for the given session token.
func New(sessionToken string, opts ...Option) (*Client, error) {
	session, err := auth.NewSession(sessionToken)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:             config.Load(),
		log:             logger.New(config.IsProduction()),
		session:         session,
		historyPageSize: defaultHistoryPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.backend == nil {
		c.backend = gateway.New(gateway.Config{
			BaseURL: c.cfg.APIBaseURL,
			Timeout: c.cfg.RequestTimeout,
		}, session, c.log)
	}

	c.balance = balance.NewService(c.backend, c.log)
	c.tokens = qrtoken.NewService(c.backend, session, c.cfg, c.log)
	c.resolver = resolver.NewService(c.backend, session, c.log)
	c.payments = payment.NewService(c.backend, c.balance, session, c.cfg, c.log)
	c.transfers = transfer.NewService(c.resolver, c.payments, session, c.cfg, c.log)
	c.receipts = receipt.NewCalculator(c.cfg, c.log)

	return c, nil
}

// Balance is the refreshable balance oracle.
func (c *Client) Balance() balance.Service { return c.balance }

// Tokens is the QR payment token lifecycle manager.
func (c *Client) Tokens() qrtoken.Service { return c.tokens }

// Resolver resolves counterparties from any identification channel.
func (c *Client) Resolver() resolver.Service { return c.resolver }

// Payments is the payment confirmation controller.
func (c *Client) Payments() payment.Service { return c.payments }

// Transfers is the peer-to-peer transfer orchestrator.
func (c *Client) Transfers() transfer.Service { return c.transfers }

// Receipts formats fee/net breakdowns.
func (c *Client) Receipts() *receipt.Calculator { return c.receipts }

// RefreshResult carries the independent outcomes of a pull-to-refresh.
// Each fetch stands alone: one failing never blocks or rolls back the others.
type RefreshResult struct {
	Balance    decimal.Decimal
	BalanceErr error

	ActiveTokens []models.PaymentQRToken
	TokensErr    error

	History    []models.HistoryEntry
	HistoryErr error
}

// RefreshAll re-fetches balance, active tokens and transaction history
// concurrently.
func (c *Client) RefreshAll(ctx context.Context) RefreshResult {
	var res RefreshResult
	done := make(chan struct{}, 3)

	go func() {
		res.Balance, res.BalanceErr = c.balance.Refresh(ctx)
		done <- struct{}{}
	}()
	go func() {
		res.ActiveTokens, res.TokensErr = c.tokens.ListActive(ctx)
		done <- struct{}{}
	}()
	go func() {
		res.History, res.HistoryErr = c.backend.GetTransactionHistory(ctx, c.historyPageSize, 0)
		done <- struct{}{}
	}()

	for i := 0; i < 3; i++ {
		<-done
	}

	if res.BalanceErr != nil {
		c.log.Warn().Err(res.BalanceErr).Msg("balance refresh failed")
	}
	if res.TokensErr != nil {
		c.log.Warn().Err(res.TokensErr).Msg("token list refresh failed")
	}
	if res.HistoryErr != nil {
		c.log.Warn().Err(res.HistoryErr).Msg("history refresh failed")
	}
	return res
}
