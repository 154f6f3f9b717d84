package resolver

import (
	"context"

	"sotrapay/internal/models"
)

// Gateway covers the lookup endpoints the resolver dispatches to.
type Gateway interface {
	ResolveByUsername(ctx context.Context, username string) (*models.CounterpartyIdentity, error)
	ResolveByPhone(ctx context.Context, phone string) (*models.CounterpartyIdentity, error)
	ResolveByID(ctx context.Context, id string) (*models.CounterpartyIdentity, error)
	ScanQR(ctx context.Context, token string) (*models.CounterpartyIdentity, error)
}

// Identity is the slice of the session the self-transfer guard needs.
type Identity interface {
	IsOwnID(id string) bool
	IsOwnPhone(phone string) bool
	IsOwnIdentity(identity *models.CounterpartyIdentity) bool
}

// Service resolves any supported reference into a counterparty identity.
type Service interface {
	Resolve(ctx context.Context, ref Ref) (*models.CounterpartyIdentity, error)
}
