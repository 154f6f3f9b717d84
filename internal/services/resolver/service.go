// Package resolver normalizes the four counterparty identification channels
// (QR payload, username, phone, user id) into one lookup with one guard.
package resolver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/validation"
)

// ErrUnknownKind indicates a Ref built outside the provided constructors.
var ErrUnknownKind = &domainErrors.DomainError{
	Code:    "UNKNOWN_REF_KIND",
	Message: "unknown counterparty reference kind",
}

type service struct {
	gateway Gateway
	session Identity
	log     zerolog.Logger
}

// NewService creates a counterparty resolver.
func NewService(gateway Gateway, session Identity, log zerolog.Logger) Service {
	if gateway == nil {
		panic("gateway is required")
	}
	if session == nil {
		panic("session is required")
	}
	return &service{
		gateway: gateway,
		session: session,
		log:     log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve dispatches on the reference kind. When the referenced value itself
// already identifies the caller (phone, id) the self-transfer guard runs
// before the lookup; for QR and username it runs on the resolved identity.
func (s *service) Resolve(ctx context.Context, ref Ref) (*models.CounterpartyIdentity, error) {
	var (
		identity *models.CounterpartyIdentity
		err      error
	)

	switch ref.Kind {
	case KindPhone:
		if s.session.IsOwnPhone(ref.Value) {
			return nil, domainErrors.ErrSelfTransfer
		}
		identity, err = s.gateway.ResolveByPhone(ctx, validation.NormalizePhone(ref.Value))

	case KindID:
		if s.session.IsOwnID(ref.Value) {
			return nil, domainErrors.ErrSelfTransfer
		}
		identity, err = s.gateway.ResolveByID(ctx, ref.Value)

	case KindUsername:
		identity, err = s.gateway.ResolveByUsername(ctx, ref.Value)

	case KindQR:
		var payload *models.QRPayload
		payload, err = validation.ParsePayload(ref.Value)
		if err != nil {
			return nil, err
		}
		identity, err = s.gateway.ScanQR(ctx, payload.Token)

	default:
		return nil, ErrUnknownKind
	}

	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref.Kind, err)
	}

	// QR and username references can resolve to the caller's own account.
	if s.session.IsOwnIdentity(identity) {
		return nil, domainErrors.ErrSelfTransfer
	}

	s.log.Debug().Str("kind", string(ref.Kind)).Str("counterparty_id", identity.ID).
		Msg("counterparty resolved")
	return identity, nil
}
