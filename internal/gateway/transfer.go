package gateway

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sotrapay/internal/models"
)

// HeaderIdempotencyKey deduplicates transfer submissions server-side. The
// client-side single-flight guard protects against double taps; this header
// protects against network-level replays.
const HeaderIdempotencyKey = "Idempotency-Key"

// TransferFunds submits exactly one transfer. idempotencyKey must be fresh
// per confirmation attempt and reused only on an explicit user retry of the
// same attempt.
func (c *Client) TransferFunds(ctx context.Context, req models.TransferRequest, idempotencyKey string) (*models.TransferResult, error) {
	headers := map[string]string{HeaderIdempotencyKey: idempotencyKey}
	var result models.TransferResult
	if err := c.do(ctx, fiber.MethodPost, "/transfers", req, headers, &result); err != nil {
		return nil, fmt.Errorf("transfer funds: %w", err)
	}
	return &result, nil
}
