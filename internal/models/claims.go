package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the fields the backend embeds in the session token that
// the client needs locally: its own identity for the self-transfer guard and
// the wallet the QR tokens belong to.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	WalletID string `json:"wallet_id"`
	Role     string `json:"role"`
}
