package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidEnvelope: http.StatusBadRequest,
	service.ErrEmptyAckList:    http.StatusBadRequest,
	service.ErrTokenIsExpired:  http.StatusUnauthorized,
	service.ErrTokenIsInvalid:  http.StatusUnauthorized,

	store.ErrEnvelopeAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
