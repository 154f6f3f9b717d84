package models

import (
	"github.com/shopspring/decimal"
)

// Transfer statuses.
const (
	TransferStatusCompleted = "COMPLETED"
	TransferStatusPending   = "PENDING"
	TransferStatusFailed    = "FAILED"
)

// TransferRequest is a submission to move Amount to ToUserID.
type TransferRequest struct {
	ToUserID    string          `json:"to_user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// TransferResult is the backend's record of a completed submission. It is
// immutable; Fee and NetAmount are computed server-side and only formatted
// by the client.
type TransferResult struct {
	TransactionID string          `json:"transaction_id"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	Status        string          `json:"status"`
}

// HistoryEntry is one line of the wallet's transaction history.
type HistoryEntry struct {
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     string          `json:"created_at"`
}
