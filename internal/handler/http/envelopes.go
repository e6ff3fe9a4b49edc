package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

// maxRequestBytes bounds a request body; the payload limit itself is
// enforced by the mailbox service.
const maxRequestBytes = 2 * service.MaxPayloadBytes

// decodeBody answers 413 for oversized bodies and 400 for malformed ones.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := utils.DecodeJSON(w, r, v, maxRequestBytes)
	if err == nil {
		return true
	}

	logger.FromRequest(r).Err(err).Str("func", "decodeBody").Msg("invalid request body")
	if errors.Is(err, utils.ErrBodyTooLarge) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
	return false
}

// postEnvelope queues an envelope for its recipient. The sender is the
// authenticated pubkey. A repeated envelope ID answers 409 with the ID so
// a retrying client knows it already landed.
func (h *Handler) postEnvelope(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	from, ok := utils.GetPubkeyFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SendEnvelopeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.services.MailboxService.PostEnvelope(r.Context(), from, req)
	if errors.Is(err, store.ErrEnvelopeAlreadyExists) {
		_, _ = utils.WriteJSON(w, models.SendEnvelopeResponse{ID: id}, http.StatusConflict)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.postEnvelope").Msg("error storing envelope")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.SendEnvelopeResponse{ID: id}, http.StatusCreated)
}

// fetchEnvelopes returns the oldest envelopes of the caller's mailbox.
// They stay queued until acknowledged.
func (h *Handler) fetchEnvelopes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pubkey, ok := utils.GetPubkeyFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	envelopes, err := h.services.MailboxService.FetchEnvelopes(r.Context(), pubkey, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchEnvelopes").Msg("error fetching envelopes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, envelopes, http.StatusOK)
}

// ackEnvelopes removes delivered envelopes from the caller's mailbox.
func (h *Handler) ackEnvelopes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pubkey, ok := utils.GetPubkeyFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	removed, err := h.services.MailboxService.AckEnvelopes(r.Context(), pubkey, req.IDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.ackEnvelopes").Msg("error acknowledging envelopes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.ackEnvelopes").Int64("removed", removed).Int("requested", len(req.IDs)).Send()
	w.WriteHeader(http.StatusNoContent)
}
