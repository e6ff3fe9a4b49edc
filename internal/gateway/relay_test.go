// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	testSignKey = "relay-secret"
	testIssuer  = "steward-relay"
)

var (
	selfKey = strings.Repeat("a", 64)
	peerKey = strings.Repeat("b", 64)
)

func newTestGateway(t *testing.T, serverURL string) *RelayGateway {
	t.Helper()
	g, err := NewRelayGateway(config.ClientGateway{
		RelayURL:       serverURL,
		SignKey:        testSignKey,
		TokenIssuer:    testIssuer,
		TokenDuration:  time.Hour,
		RequestTimeout: time.Second,
		RetryCount:     0,
	}, selfKey, 10*time.Millisecond, logger.Nop())
	require.NoError(t, err)
	return g
}

func authorize(t *testing.T, r *http.Request) string {
	t.Helper()
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !assert.True(t, ok, "bearer token expected") {
		return ""
	}
	token, err := utils.ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	if !assert.NoError(t, err) {
		return ""
	}
	return token.Pubkey
}

// ── NewRelayGateway ──────────────────────────────────────────────────────────

func TestNewRelayGateway_InvalidURL(t *testing.T) {
	_, err := NewRelayGateway(config.ClientGateway{RelayURL: "  "}, selfKey, time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNewRelayGateway_InvalidPollInterval(t *testing.T) {
	_, err := NewRelayGateway(config.ClientGateway{RelayURL: "localhost:8080"}, selfKey, 0, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://relay.example/", want: "https://relay.example"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SendEnvelope ─────────────────────────────────────────────────────────────

func TestSendEnvelope_Success(t *testing.T) {
	var got models.SendEnvelopeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/envelopes", r.URL.Path)
		assert.Equal(t, selfKey, authorize(t, r))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, utils.HashString(body, testSignKey), r.Header.Get(HashHeader))
		assert.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"` + got.ID + `"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	id, err := g.SendEnvelope(context.Background(), peerKey, []byte(`{"type":"shard_data"}`), []string{"wss://r"})

	require.NoError(t, err)
	assert.Equal(t, got.ID, id)
	assert.Equal(t, peerKey, got.To)
	assert.JSONEq(t, `{"type":"shard_data"}`, string(got.Payload))
}

func TestSendEnvelope_ConflictIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).SendEnvelope(context.Background(), peerKey, []byte(`{}`), nil)
	assert.NoError(t, err)
}

func TestSendEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestGateway(t, srv.URL).SendEnvelope(context.Background(), peerKey, []byte(`{}`), nil)
			assert.ErrorIs(t, err, ErrDeliveryFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendEnvelope_RetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.client.SetRetryCount(3).SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)

	_, err := g.SendEnvelope(context.Background(), peerKey, []byte(`{}`), nil)
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()
}

func TestSendEnvelope_EmptyRecipient(t *testing.T) {
	g := newTestGateway(t, "http://localhost:1")
	_, err := g.SendEnvelope(context.Background(), "", []byte(`{}`), nil)
	assert.ErrorIs(t, err, ErrEmptyRecipient)
}

// ── Inbound ──────────────────────────────────────────────────────────────────

type fakeMailbox struct {
	mu    sync.Mutex
	queue []models.MailboxEnvelope
	acked []string
}

func (f *fakeMailbox) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, selfKey, authorize(t, r))

		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/envelopes":
			assert.Equal(t, "100", r.URL.Query().Get("limit"))
			_, _ = utils.WriteJSON(w, f.queue, http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/api/envelopes/ack":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, utils.HashString(body, testSignKey), r.Header.Get(HashHeader))
			var req models.AckRequest
			assert.NoError(t, json.Unmarshal(body, &req))
			f.acked = append(f.acked, req.IDs...)
			kept := f.queue[:0]
			for _, env := range f.queue {
				if !contains(req.IDs, env.ID) {
					kept = append(kept, env)
				}
			}
			f.queue = kept
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeMailbox) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acked...)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestInbound_DeliversAndAcks(t *testing.T) {
	mb := &fakeMailbox{queue: []models.MailboxEnvelope{
		{ID: "e1", FromPubkey: peerKey, ToPubkey: selfKey, Payload: json.RawMessage(`{"type":"a"}`)},
		{ID: "e2", FromPubkey: peerKey, ToPubkey: selfKey, Payload: json.RawMessage(`{"type":"b"}`)},
	}}
	srv := httptest.NewServer(mb.handler(t))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := g.Inbound(ctx)
	require.NoError(t, err)

	first := receive(t, ch)
	second := receive(t, ch)
	assert.Equal(t, "e1", first.ID)
	assert.Equal(t, "e2", second.ID)
	assert.Equal(t, peerKey, first.FromPubkey)

	assert.Eventually(t, func() bool {
		return len(mb.ackedIDs()) == 2
	}, time.Second, 5*time.Millisecond)

	_, err = g.Inbound(ctx)
	assert.ErrorIs(t, err, ErrInboundActive)
}

func TestInbound_DedupesRedeliveredIDs(t *testing.T) {
	var mu sync.Mutex
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// ack is lost, so the relay keeps serving the same envelope
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		mu.Lock()
		fetches++
		mu.Unlock()
		_, _ = utils.WriteJSON(w, []models.MailboxEnvelope{
			{ID: "dup", FromPubkey: peerKey, ToPubkey: selfKey, Payload: json.RawMessage(`{}`)},
		}, http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := g.Inbound(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dup", receive(t, ch).ID)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fetches >= 3
	}, time.Second, 5*time.Millisecond)

	select {
	case env := <-ch:
		t.Fatalf("duplicate envelope delivered: %s", env.ID)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestInbound_ClosesOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, []models.MailboxEnvelope{}, http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := g.Inbound(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestSeenSet_Evicts(t *testing.T) {
	s := newSeenSet(2)
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("c"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Add("a"))

	s.Remove("c")
	assert.True(t, s.Add("c"))
}
