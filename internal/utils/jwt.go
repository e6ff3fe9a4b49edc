package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	ErrInvalidTokenParams = errors.New("issuer, pubkey, duration and sign key are required")
	ErrEmptyTokenSubject  = errors.New("token has no subject")
)

// GenerateJWTToken signs an HS256 token whose subject is the device pubkey.
// The gateway mints one per relay session; the relay trusts the subject as
// the sender of every envelope posted with it.
func GenerateJWTToken(issuer, pubkey string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || pubkey == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   pubkey,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, Pubkey: pubkey}, nil
}

// ValidateAndParseJWTToken checks signature, issuer and expiry and returns
// the token with its subject in Pubkey. An expired token wraps
// jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	keyFunc := func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil }

	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, keyFunc,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	pubkey, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("read token subject: %w", err)
	}
	if pubkey == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	return models.Token{Token: token, SignedString: tokenString, Pubkey: pubkey}, nil
}
