// Package receipt formats the payee-facing fee breakdown of a completed
// transfer. The fee schedule is server-side; nothing here recomputes money.
package receipt

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sotrapay/internal/config"
	"sotrapay/internal/models"
)

// Calculator renders fee/net breakdowns for receipts.
type Calculator struct {
	currency string
	exponent int32
	log      zerolog.Logger
}

// NewCalculator creates a breakdown calculator for the wallet currency.
func NewCalculator(cfg config.Config, log zerolog.Logger) *Calculator {
	return &Calculator{
		currency: cfg.Currency,
		exponent: cfg.CurrencyExponent,
		log:      log.With().Str("component", "receipt").Logger(),
	}
}

// Breakdown is the receipt's money section.
type Breakdown struct {
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal

	GrossDisplay string
	FeeDisplay   string
	NetDisplay   string

	// Mismatch is set when net != gross - fee at minor-unit precision. The
	// server's figures are still displayed as-is; this only flags them.
	Mismatch bool
}

// Breakdown derives the display lines from a transfer result. A fee/net
// inconsistency is logged and flagged, never rewritten.
func (c *Calculator) Breakdown(result models.TransferResult) Breakdown {
	expected := result.Amount.Sub(result.Fee).Truncate(c.exponent)
	mismatch := !result.NetAmount.Truncate(c.exponent).Equal(expected)
	if mismatch {
		c.log.Error().
			Str("transaction_id", result.TransactionID).
			Str("amount", result.Amount.String()).
			Str("fee", result.Fee.String()).
			Str("net_amount", result.NetAmount.String()).
			Msg("fee breakdown mismatch in transfer result")
	}

	return Breakdown{
		Gross:        result.Amount,
		Fee:          result.Fee,
		Net:          result.NetAmount,
		GrossDisplay: c.Format(result.Amount),
		FeeDisplay:   c.Format(result.Fee),
		NetDisplay:   c.Format(result.NetAmount),
		Mismatch:     mismatch,
	}
}

// Format renders an amount at the currency's minor-unit precision.
func (c *Calculator) Format(amount decimal.Decimal) string {
	return amount.StringFixed(c.exponent) + " " + c.currency
}
