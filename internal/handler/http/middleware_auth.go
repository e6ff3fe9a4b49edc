package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
)

// auth authenticates the sender by its bearer token and stores the token
// subject, the device public key, under [utils.PubkeyCtxKey]. Every failure
// answers 401; only expiry is spelled out so clients know to re-sign.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r).With().Str("func", "*Handler.auth").Logger()

		raw, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("rejected request")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), raw)
		if err != nil {
			log.Warn().Err(err).Msg("rejected token")
			msg := http.StatusText(http.StatusUnauthorized)
			if errors.Is(err, service.ErrTokenIsExpired) {
				msg = service.ErrTokenIsExpired.Error()
			}
			http.Error(w, msg, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PubkeyCtxKey, token.Pubkey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
