// Package auth exposes the authenticated user's own identity as carried in
// the session token. Token issuance and refresh belong to the backend; the
// client only reads the claims it needs for the self-transfer guard.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
	"sotrapay/internal/validation"
)

// Session is the decoded identity behind the current bearer token.
type Session struct {
	token  string
	claims models.SessionClaims
}

// NewSession decodes the bearer token's claims. The signature is not checked
// here — the client holds no verification key and the backend re-validates
// the token on every request.
func NewSession(token string) (*Session, error) {
	var claims models.SessionClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, &domainErrors.DomainError{
			Code:    "INVALID_SESSION",
			Message: "session token could not be read",
		}
	}
	if claims.UserID == "" {
		return nil, &domainErrors.DomainError{
			Code:    "INVALID_SESSION",
			Message: "session token carries no user identity",
		}
	}
	return &Session{token: token, claims: claims}, nil
}

// Token returns the raw bearer token for outgoing requests.
func (s *Session) Token() string { return s.token }

// UserID returns the authenticated user's id.
func (s *Session) UserID() string { return s.claims.UserID }

// Username returns the authenticated user's username.
func (s *Session) Username() string { return s.claims.Username }

// WalletID returns the wallet the session operates on.
func (s *Session) WalletID() string { return s.claims.WalletID }

// IsOwnID reports whether id identifies the authenticated user.
func (s *Session) IsOwnID(id string) bool {
	return id != "" && id == s.claims.UserID
}

// IsOwnPhone reports whether phone is the authenticated user's own number.
func (s *Session) IsOwnPhone(phone string) bool {
	return validation.SamePhone(phone, s.claims.Phone)
}

// IsOwnIdentity checks a resolved counterparty against the session. Used
// after QR or username resolution, where the value matched was not known to
// be ours beforehand.
func (s *Session) IsOwnIdentity(identity *models.CounterpartyIdentity) bool {
	if identity == nil {
		return false
	}
	return s.IsOwnID(identity.ID) || s.IsOwnPhone(identity.PhoneNumber)
}
