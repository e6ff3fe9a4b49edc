package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer JWT a device presents to the relay.
//
// The "sub" claim carries the device public key; the relay trusts it as the
// sender of every envelope posted with the token.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Pubkey is a cached copy of the "sub" claim.
	Pubkey string `json:"-"`
}

// GetPubkey returns the device public key from the "sub" claim.
func (t *Token) GetPubkey() (string, error) {
	pubkey, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting pubkey from token: %w", err)
	}
	if pubkey == "" {
		return "", fmt.Errorf("error extracting pubkey from token: empty subject")
	}

	return pubkey, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
