package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"sotrapay/internal/models"
)

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// GetBalance fetches the wallet's authoritative balance.
func (c *Client) GetBalance(ctx context.Context) (*models.WalletBalance, error) {
	var resp balanceResponse
	if err := c.do(ctx, fiber.MethodGet, "/wallet/balance", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &models.WalletBalance{Balance: resp.Balance, FetchedAt: time.Now()}, nil
}

// GetTransactionHistory fetches a page of the wallet's history.
func (c *Client) GetTransactionHistory(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error) {
	path := fmt.Sprintf("/transactions?limit=%d&offset=%d", limit, offset)
	var entries []models.HistoryEntry
	if err := c.do(ctx, fiber.MethodGet, path, nil, nil, &entries); err != nil {
		return nil, fmt.Errorf("get transaction history: %w", err)
	}
	return entries, nil
}
