package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletBalance is the last fetched balance. The backend owns the truth; the
// client re-fetches after every submission instead of decrementing locally.
type WalletBalance struct {
	Balance   decimal.Decimal `json:"balance"`
	FetchedAt time.Time       `json:"-"`
}

// BalancePreview is a non-authoritative projection shown during confirmation.
// It is display-only and must never be written back as the balance.
type BalancePreview struct {
	Current   decimal.Decimal
	Amount    decimal.Decimal
	Remaining decimal.Decimal
}
