package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	testSignKey = "relay-secret"
	testIssuer  = "steward-relay"
)

var (
	aliceKey = strings.Repeat("a", 64)
	bobKey   = strings.Repeat("b", 64)
)

// newRelayHandler wires a handler over real services and an in-memory
// mailbox.
func newRelayHandler(t *testing.T) *Handler {
	t.Helper()
	services := &service.RelayServices{
		AuthService:    service.NewAuthService(testSignKey, testIssuer),
		MailboxService: service.NewMailboxService(store.NewMemoryMailboxStorage()),
		AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("1.0.0", "2026-03-01", "deadbeef")),
	}
	return NewHandler(services, testSignKey, logger.Nop())
}

func bearer(t *testing.T, pubkey string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, pubkey, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// signedRequest builds a request authenticated as pubkey whose body carries
// a valid HashSHA256 header.
func signedRequest(t *testing.T, method, target, pubkey string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", bearer(t, pubkey))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(hashHeader, utils.HashString(body, testSignKey))
	}
	return req
}

func withNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
