package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/envelopes", h.fetchEnvelopes)
		r.With(h.checkHash).Post("/api/envelopes", h.postEnvelope)
		r.With(h.checkHash).Post("/api/envelopes/ack", h.ackEnvelopes)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
