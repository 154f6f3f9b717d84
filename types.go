package sotrapay

import (
	"time"

	"sotrapay/internal/config"
	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/services/payment"
	"sotrapay/internal/services/qrtoken"
	"sotrapay/internal/services/receipt"
	"sotrapay/internal/services/resolver"
)

// The types an embedder needs to configure the client, implement Backend or
// consume the services' results live in internal packages; they are
// re-exported here so the UI layer never has to reach below the module root.

// Config is the client configuration accepted by WithConfig.
type Config = config.Config

type (
	WalletBalance        = models.WalletBalance
	BalancePreview       = models.BalancePreview
	PaymentQRToken       = models.PaymentQRToken
	QRPayload            = models.QRPayload
	CounterpartyIdentity = models.CounterpartyIdentity
	DriverInfo           = models.DriverInfo
	TransferRequest      = models.TransferRequest
	TransferResult       = models.TransferResult
	HistoryEntry         = models.HistoryEntry
)

const (
	TokenStatusActive    = models.TokenStatusActive
	TokenStatusRedeemed  = models.TokenStatusRedeemed
	TokenStatusExpired   = models.TokenStatusExpired
	TokenStatusCancelled = models.TokenStatusCancelled

	TransferStatusCompleted = models.TransferStatusCompleted
	TransferStatusPending   = models.TransferStatusPending
	TransferStatusFailed    = models.TransferStatusFailed
)

// ConfirmRequest is the input of Payments().Confirm.
type ConfirmRequest = payment.ConfirmRequest

// Receipt is what a successful confirmation returns.
type Receipt = payment.Receipt

// Breakdown is the fee/net display section built by Receipts().
type Breakdown = receipt.Breakdown

// Route is the screen routing after a confirmation attempt.
type Route = payment.Route

const (
	RouteReceipt  = payment.RouteReceipt
	RouteRecharge = payment.RouteRecharge
	RouteStay     = payment.RouteStay
)

// RouteFor maps a confirmation outcome to its screen routing.
func RouteFor(err error) Route { return payment.RouteFor(err) }

// Ref is a tagged counterparty reference for Resolver().Resolve.
type Ref = resolver.Ref

func QRRef(payload string) Ref        { return resolver.QRRef(payload) }
func UsernameRef(username string) Ref { return resolver.UsernameRef(username) }
func PhoneRef(phone string) Ref       { return resolver.PhoneRef(phone) }
func IDRef(id string) Ref             { return resolver.IDRef(id) }

// Countdown is the per-token expiry ticker.
type Countdown = qrtoken.Countdown

// NewCountdown creates a countdown for a minted payment token.
func NewCountdown(token *PaymentQRToken) *Countdown { return qrtoken.NewCountdown(token) }

// FormatRemaining renders a remaining duration as M:SS.
func FormatRemaining(remaining time.Duration) string { return qrtoken.FormatRemaining(remaining) }

// DomainError is the user-presentable error model every sentinel below uses.
type DomainError = domainErrors.DomainError

// Error sentinels, for errors.Is checks by the UI layer.
var (
	ErrInvalidAmount        = domainErrors.ErrInvalidAmount
	ErrAmountBelowMinimum   = domainErrors.ErrAmountBelowMinimum
	ErrInsufficientBalance  = domainErrors.ErrInsufficientBalance
	ErrNoRecipient          = domainErrors.ErrNoRecipient
	ErrSelfTransfer         = domainErrors.ErrSelfTransfer
	ErrSubmissionInFlight   = domainErrors.ErrSubmissionInFlight
	ErrBalanceUnknown       = domainErrors.ErrBalanceUnknown
	ErrInvalidQR            = domainErrors.ErrInvalidQR
	ErrQRExpired            = domainErrors.ErrQRExpired
	ErrQRInactive           = domainErrors.ErrQRInactive
	ErrTokenNotCancellable  = domainErrors.ErrTokenNotCancellable
	ErrInvalidPayload       = domainErrors.ErrInvalidPayload
	ErrCounterpartyNotFound = domainErrors.ErrCounterpartyNotFound
	ErrPhoneTooShort        = domainErrors.ErrPhoneTooShort
)
