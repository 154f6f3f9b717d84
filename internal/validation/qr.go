package validation

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

// ParsePayload decodes a scanned QR payload. A payload that is not JSON, or
// that lacks a redemption token, is invalid — distinct from a token that
// resolves to nothing server-side.
func ParsePayload(raw string) (*models.QRPayload, error) {
	var payload models.QRPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, domainErrors.ErrInvalidPayload
	}
	if payload.Token == "" {
		return nil, domainErrors.ErrInvalidPayload
	}
	if payload.Amount != nil && payload.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainErrors.ErrInvalidPayload
	}
	return &payload, nil
}
