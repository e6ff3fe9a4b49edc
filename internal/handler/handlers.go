package handler

import (
	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/handler/http"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
)

// Handlers groups the transport handlers exposed by the relay.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the relay transport handlers. Request bodies are
// verified with the same key that signs bearer tokens.
func NewHandlers(services *service.RelayServices, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg.TokenSignKey, logger)}, nil
}
