package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token statuses as reported by the backend. Transitions are monotonic:
// ACTIVE may move to exactly one terminal status, terminal statuses never move.
const (
	TokenStatusActive    = "ACTIVE"
	TokenStatusRedeemed  = "REDEEMED"
	TokenStatusExpired   = "EXPIRED"
	TokenStatusCancelled = "CANCELLED"
)

// PaymentQRToken is a server-issued request-to-pay: "pay me Amount before
// ExpiresAt". The client never rewrites Status locally; EffectiveStatus exists
// for display once the local countdown has run out.
type PaymentQRToken struct {
	Token     string          `json:"token"`
	QRCode    string          `json:"qr_code"`
	Amount    decimal.Decimal `json:"amount"`
	WalletID  string          `json:"wallet_id"`
	ExpiresAt time.Time       `json:"expires_at"`
	Status    string          `json:"status"`
}

// Terminal reports whether the token can no longer change state.
func (t *PaymentQRToken) Terminal() bool {
	return t.Status == TokenStatusRedeemed ||
		t.Status == TokenStatusExpired ||
		t.Status == TokenStatusCancelled
}

// Remaining returns the validity left at the given instant, clamped at zero.
func (t *PaymentQRToken) Remaining(now time.Time) time.Duration {
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// EffectiveStatus is the status to display: an ACTIVE token whose countdown
// has reached zero renders as EXPIRED even before the server confirms it on
// the next fetch. The stored Status is left untouched.
func (t *PaymentQRToken) EffectiveStatus(now time.Time) string {
	if t.Status == TokenStatusActive && !now.Before(t.ExpiresAt) {
		return TokenStatusExpired
	}
	return t.Status
}

// QRPayload is the structured content of a scanned code. A payload without a
// redemption token is invalid.
type QRPayload struct {
	Token  string           `json:"token"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}
