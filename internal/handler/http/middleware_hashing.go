package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
)

const hashHeader = "HashSHA256"

// checkHash verifies the HMAC-SHA256 of the request body against the
// HashSHA256 header and restores the body for the next handler.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		received := r.Header.Get(hashHeader)
		if received == "" {
			log.Err(ErrMissingHash).Str("func", "*Handler.checkHash").Send()
			http.Error(w, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		expected := utils.HashString(body, h.hashKey)
		if !utils.EqualHash(expected, received) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", received).
				Str("hashed body", expected).
				Msg("hashes are not equal")
			http.Error(w, ErrHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
