package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	// HashHeader carries the HMAC-SHA256 of the request body.
	HashHeader = "HashSHA256"

	defaultBatchSize = 100
	seenCapacity     = 4096
	tokenRefreshSkew = 30 * time.Second
)

// RelayGateway is the HTTP [Gateway] backed by the dev relay mailbox.
type RelayGateway struct {
	client *utils.HTTPClient

	pubkey        string
	signKey       string
	issuer        string
	tokenDuration time.Duration
	pollInterval  time.Duration
	batchSize     int

	ids *utils.UUIDGenerator

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	active atomic.Bool
	seen   *seenSet

	logger *logger.Logger
}

// NewRelayGateway constructs a [RelayGateway] for the device pubkey. It
// normalises cfg.RelayURL and configures transport retries from cfg.
func NewRelayGateway(cfg config.ClientGateway, pubkey string, pollInterval time.Duration, log *logger.Logger) (*RelayGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay url: %w", err)
	}
	if pollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}

	return &RelayGateway{
		client:        utils.NewRetryingHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount),
		pubkey:        pubkey,
		signKey:       cfg.SignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		pollInterval:  pollInterval,
		batchSize:     defaultBatchSize,
		ids:           utils.NewUUIDGenerator(),
		seen:          newSeenSet(seenCapacity),
		logger:        log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendEnvelope implements [Gateway]. It POSTs the envelope to
// /api/envelopes. A 409 means an earlier attempt of the same envelope
// already landed and counts as success. The relay list is advisory; the dev
// relay is a single mailbox.
func (g *RelayGateway) SendEnvelope(ctx context.Context, to string, payload []byte, relays []string) (string, error) {
	if to == "" {
		return "", ErrEmptyRecipient
	}

	req := models.SendEnvelopeRequest{
		ID:      g.ids.Generate(),
		To:      to,
		Payload: json.RawMessage(payload),
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}

	r, err := g.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetHeader(HashHeader, utils.HashString(body, g.signKey)).
		SetBody(body).
		Post("/api/envelopes")
	if err != nil {
		return "", fmt.Errorf("%w: send envelope request: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrConflict) {
		return "", fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	g.logger.Debug().
		Str("func", "*RelayGateway.SendEnvelope").
		Str("envelope_id", req.ID).
		Str("to", to).
		Int("relays", len(relays)).
		Msg("envelope sent")

	return req.ID, nil
}

// Inbound implements [Gateway]. It polls the mailbox every poll interval,
// emits envelopes not seen before and acknowledges each batch once it has
// been handed to the consumer.
func (g *RelayGateway) Inbound(ctx context.Context) (<-chan models.Envelope, error) {
	if !g.active.CompareAndSwap(false, true) {
		return nil, ErrInboundActive
	}

	out := make(chan models.Envelope)
	go func() {
		defer g.active.Store(false)
		defer close(out)

		ticker := time.NewTicker(g.pollInterval)
		defer ticker.Stop()

		for {
			if err := g.poll(ctx, out); err != nil && ctx.Err() == nil {
				g.logger.Err(err).Str("func", "*RelayGateway.Inbound").Msg("mailbox poll failed")
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out, nil
}

func (g *RelayGateway) poll(ctx context.Context, out chan<- models.Envelope) error {
	envelopes, err := g.fetch(ctx)
	if err != nil {
		return err
	}

	ack := make([]string, 0, len(envelopes))
	for _, env := range envelopes {
		if g.seen.Add(env.ID) {
			select {
			case out <- env.Envelope():
			case <-ctx.Done():
				// not handed over, so not acknowledged
				g.seen.Remove(env.ID)
				return g.ack(context.WithoutCancel(ctx), ack)
			}
		}
		ack = append(ack, env.ID)
	}

	return g.ack(ctx, ack)
}

func (g *RelayGateway) fetch(ctx context.Context) ([]models.MailboxEnvelope, error) {
	r, err := g.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.
		SetQueryParam("limit", strconv.Itoa(g.batchSize)).
		Get("/api/envelopes")
	if err != nil {
		return nil, fmt.Errorf("fetch envelopes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelopes []models.MailboxEnvelope
	if err = json.Unmarshal(resp.Body(), &envelopes); err != nil {
		return nil, fmt.Errorf("decode envelopes response: %w", err)
	}

	return envelopes, nil
}

func (g *RelayGateway) ack(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	body, err := json.Marshal(models.AckRequest{IDs: ids})
	if err != nil {
		return fmt.Errorf("encode ack: %w", err)
	}

	r, err := g.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetHeader(HashHeader, utils.HashString(body, g.signKey)).
		SetBody(body).
		Post("/api/envelopes/ack")
	if err != nil {
		return fmt.Errorf("ack envelopes request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying a bearer token for the device,
// minting a fresh one shortly before the current one expires.
func (g *RelayGateway) authedRequest(ctx context.Context) (*resty.Request, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token == "" || time.Now().Add(tokenRefreshSkew).After(g.tokenExpiry) {
		token, err := utils.GenerateJWTToken(g.issuer, g.pubkey, g.tokenDuration, g.signKey)
		if err != nil {
			return nil, fmt.Errorf("generate relay token: %w", err)
		}
		g.token = token.SignedString
		g.tokenExpiry = time.Now().Add(g.tokenDuration)
	}

	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.token), nil
}

// seenSet remembers the most recent envelope IDs, evicting the oldest once
// capacity is reached.
type seenSet struct {
	mu       sync.Mutex
	ids      map[string]struct{}
	order    []string
	capacity int
}

func newSeenSet(capacity int) *seenSet {
	return &seenSet{ids: make(map[string]struct{}, capacity), capacity: capacity}
}

// Add records id and reports whether it was new.
func (s *seenSet) Add(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return false
	}
	if len(s.order) >= s.capacity {
		delete(s.ids, s.order[0])
		s.order = s.order[1:]
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)

	return true
}

func (s *seenSet) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *seenSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
