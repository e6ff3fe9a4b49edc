package http

import (
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
)

type Handler struct {
	services *service.RelayServices
	// hashKey verifies the HMAC of request bodies.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.RelayServices, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		logger:   logger,
	}
}
