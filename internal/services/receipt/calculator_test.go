package receipt

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"sotrapay/internal/config"
	"sotrapay/internal/models"
)

func newTestCalculator() *Calculator {
	cfg := config.Config{Currency: "GNF", CurrencyExponent: 0}
	return NewCalculator(cfg, zerolog.Nop())
}

func TestBreakdown_Consistent(t *testing.T) {
	calc := newTestCalculator()

	b := calc.Breakdown(models.TransferResult{
		TransactionID: "txn_1",
		Amount:        decimal.NewFromInt(5000),
		Fee:           decimal.NewFromInt(250),
		NetAmount:     decimal.NewFromInt(4750),
	})

	assert.False(t, b.Mismatch)
	assert.Equal(t, "5000 GNF", b.GrossDisplay)
	assert.Equal(t, "250 GNF", b.FeeDisplay)
	assert.Equal(t, "4750 GNF", b.NetDisplay)
}

func TestBreakdown_ZeroFee(t *testing.T) {
	calc := newTestCalculator()

	b := calc.Breakdown(models.TransferResult{
		Amount:    decimal.NewFromInt(2000),
		Fee:       decimal.Zero,
		NetAmount: decimal.NewFromInt(2000),
	})

	assert.False(t, b.Mismatch)
	assert.Equal(t, "0 GNF", b.FeeDisplay)
}

func TestBreakdown_MismatchFlaggedNotCorrected(t *testing.T) {
	calc := newTestCalculator()

	b := calc.Breakdown(models.TransferResult{
		TransactionID: "txn_2",
		Amount:        decimal.NewFromInt(5000),
		Fee:           decimal.NewFromInt(250),
		NetAmount:     decimal.NewFromInt(4800), // server's figure disagrees
	})

	assert.True(t, b.Mismatch)
	// The server's numbers still render untouched.
	assert.Equal(t, "4800 GNF", b.NetDisplay)
	assert.True(t, b.Net.Equal(decimal.NewFromInt(4800)))
}

func TestBreakdown_SubUnitNoiseIgnored(t *testing.T) {
	// Differences below the currency's minor unit do not count as mismatch.
	calc := newTestCalculator()

	b := calc.Breakdown(models.TransferResult{
		Amount:    decimal.NewFromFloat(5000.4),
		Fee:       decimal.NewFromInt(250),
		NetAmount: decimal.NewFromInt(4750),
	})

	assert.False(t, b.Mismatch)
}

func TestFormat(t *testing.T) {
	calc := newTestCalculator()
	assert.Equal(t, "12500 GNF", calc.Format(decimal.NewFromInt(12500)))

	cfg := config.Config{Currency: "USD", CurrencyExponent: 2}
	cents := NewCalculator(cfg, zerolog.Nop())
	assert.Equal(t, "12.50 USD", cents.Format(decimal.NewFromFloat(12.5)))
}
