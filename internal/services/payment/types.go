package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

// ConfirmRequest is the terminal step's input: a resolved counterparty and
// the amount the user confirmed.
type ConfirmRequest struct {
	Counterparty *models.CounterpartyIdentity
	Amount       decimal.Decimal
	Description  string
	// TransportType tags fare payments with the vehicle kind (bus, moto, ...).
	TransportType string
}

// Receipt carries everything the receipt view renders after a successful
// submission.
type Receipt struct {
	TransactionID        string
	Reference            string
	Amount               decimal.Decimal
	Fee                  decimal.Decimal
	NetAmount            decimal.Decimal
	CounterpartyUsername string
	Timestamp            time.Time
	Status               string
}

// Route tells the caller where the flow goes after a confirmation attempt.
type Route int

const (
	// RouteReceipt: submission succeeded, show the receipt.
	RouteReceipt Route = iota
	// RouteRecharge: insufficient funds, offer the recharge screen.
	RouteRecharge
	// RouteStay: recoverable failure (or duplicate tap), stay on the
	// confirmation screen so the user can retry.
	RouteStay
)

// RouteFor maps a confirmation outcome to its screen routing.
func RouteFor(err error) Route {
	switch {
	case err == nil:
		return RouteReceipt
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return RouteRecharge
	default:
		return RouteStay
	}
}
