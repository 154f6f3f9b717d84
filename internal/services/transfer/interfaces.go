package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"sotrapay/internal/models"
	"sotrapay/internal/services/payment"
	"sotrapay/internal/services/resolver"
)

// Resolver finds the recipient before amount entry.
type Resolver interface {
	Resolve(ctx context.Context, ref resolver.Ref) (*models.CounterpartyIdentity, error)
}

// Confirmer is the confirmation controller the orchestrator hands off to.
type Confirmer interface {
	Confirm(ctx context.Context, req payment.ConfirmRequest) (*payment.Receipt, error)
}

// Identity is the slice of the session the pre-search guard needs.
type Identity interface {
	IsOwnPhone(phone string) bool
	IsOwnIdentity(identity *models.CounterpartyIdentity) bool
}

// Service orchestrates a peer-to-peer send: recipient first, amount second,
// explicit confirmation last.
type Service interface {
	SearchByPhone(ctx context.Context, phone string) (*models.CounterpartyIdentity, error)
	ScanRecipient(ctx context.Context, payload string) (*models.CounterpartyIdentity, error)
	Send(ctx context.Context, recipient *models.CounterpartyIdentity, amount decimal.Decimal, description string) (*payment.Receipt, error)
}
