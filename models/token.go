package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a signed identity assertion.
// The subject id travels in the registered "sub" claim.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Token is an issued bearer token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expiresAt"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
