package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/models"
)

func postJSON(t *testing.T, router http.Handler, path, pubkey string, v any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, signedRequest(t, http.MethodPost, path, pubkey, body))
	return rr
}

func TestEnvelopes_PostFetchAck(t *testing.T) {
	router := newRelayHandler(t).Init()
	payload := json.RawMessage(`{"type":"recovery_request","vault_id":"v"}`)

	rr := postJSON(t, router, "/api/envelopes", aliceKey, models.SendEnvelopeRequest{ID: "env-1", To: bobKey, Payload: payload})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.SendEnvelopeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "env-1", created.ID)

	// retry of the same envelope
	rr = postJSON(t, router, "/api/envelopes", aliceKey, models.SendEnvelopeRequest{ID: "env-1", To: bobKey, Payload: payload})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, signedRequest(t, http.MethodGet, "/api/envelopes?limit=10", bobKey, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var envelopes []models.MailboxEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelopes))
	require.Len(t, envelopes, 1)
	assert.Equal(t, aliceKey, envelopes[0].FromPubkey, "sender comes from the token")
	assert.JSONEq(t, string(payload), string(envelopes[0].Payload))

	// alice's own mailbox is empty
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, signedRequest(t, http.MethodGet, "/api/envelopes", aliceKey, nil))
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = postJSON(t, router, "/api/envelopes/ack", bobKey, models.AckRequest{IDs: []string{"env-1"}})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, signedRequest(t, http.MethodGet, "/api/envelopes", bobKey, nil))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestEnvelopes_BadRequests(t *testing.T) {
	router := newRelayHandler(t).Init()

	tests := []struct {
		name string
		req  *http.Request
	}{
		{
			name: "invalid recipient",
			req: func() *http.Request {
				body, _ := json.Marshal(models.SendEnvelopeRequest{To: "bob", Payload: json.RawMessage(`{}`)})
				return signedRequest(t, http.MethodPost, "/api/envelopes", aliceKey, body)
			}(),
		},
		{
			name: "body is not json",
			req:  signedRequest(t, http.MethodPost, "/api/envelopes", aliceKey, []byte(`{"to":`)),
		},
		{
			name: "empty ack",
			req:  signedRequest(t, http.MethodPost, "/api/envelopes/ack", aliceKey, []byte(`{"ids":[]}`)),
		},
		{
			name: "invalid limit",
			req:  signedRequest(t, http.MethodGet, "/api/envelopes?limit=many", aliceKey, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, tt.req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestEnvelopes_OversizedBody(t *testing.T) {
	router := newRelayHandler(t).Init()
	body := []byte(`{"to":"` + strings.Repeat("a", maxRequestBytes+1) + `"}`)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, signedRequest(t, http.MethodPost, "/api/envelopes", aliceKey, body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestEnvelopes_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailbox := servicemock.NewMockMailboxService(ctrl)
	mailbox.EXPECT().
		FetchEnvelopes(gomock.Any(), aliceKey, 0).
		Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("connection refused")))

	h := NewHandler(&service.RelayServices{
		AuthService:    service.NewAuthService(testSignKey, testIssuer),
		MailboxService: mailbox,
	}, testSignKey, logger.Nop())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, signedRequest(t, http.MethodGet, "/api/envelopes", aliceKey, nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(service.ErrInvalidEnvelope))
	assert.Equal(t, http.StatusConflict, statusFromError(store.ErrEnvelopeAlreadyExists))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(service.ErrTokenIsExpired))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("other")))
}

// TestEnvelopes_RelayGatewayRoundTrip drives the relay through the client
// gateway used by the CLI.
func TestEnvelopes_RelayGatewayRoundTrip(t *testing.T) {
	srv := httptest.NewServer(newRelayHandler(t).Init())
	defer srv.Close()

	newGateway := func(pubkey string) *gateway.RelayGateway {
		g, err := gateway.NewRelayGateway(config.ClientGateway{
			RelayURL:       srv.URL,
			SignKey:        testSignKey,
			TokenIssuer:    testIssuer,
			TokenDuration:  time.Hour,
			RequestTimeout: 2 * time.Second,
		}, pubkey, 10*time.Millisecond, logger.Nop())
		require.NoError(t, err)
		return g
	}
	alice, bob := newGateway(aliceKey), newGateway(bobKey)

	id, err := alice.SendEnvelope(t.Context(), bobKey, []byte(`{"type":"invitation_denial","code":"c"}`), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	inbound, err := bob.Inbound(ctx)
	require.NoError(t, err)

	select {
	case env := <-inbound:
		assert.Equal(t, id, env.ID)
		assert.Equal(t, aliceKey, env.FromPubkey)
		assert.JSONEq(t, `{"type":"invitation_denial","code":"c"}`, string(env.Payload))
	case <-time.After(3 * time.Second):
		t.Fatal("envelope not received")
	}
}
