package gateway

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

// MemoryHub routes envelopes between in-process endpoints. Envelopes sent to
// a pubkey with no active inbound stream are queued until one is opened or
// the queue is drained.
type MemoryHub struct {
	mu        sync.Mutex
	mailboxes map[string]*mailbox
	failures  map[string]error
	sent      []models.Envelope
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

type mailbox struct {
	queue  []models.Envelope
	notify chan struct{}
	active bool
}

// NewMemoryHub returns an empty hub.
func NewMemoryHub() *MemoryHub {
	return &MemoryHub{
		mailboxes: make(map[string]*mailbox),
		failures:  make(map[string]error),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

// Endpoint returns the gateway for pubkey.
func (h *MemoryHub) Endpoint(pubkey string) *Endpoint {
	h.mu.Lock()
	h.mailboxLocked(pubkey)
	h.mu.Unlock()

	return &Endpoint{hub: h, pubkey: pubkey}
}

// FailSendsTo makes every send addressed to pubkey fail with err until
// [MemoryHub.ClearFailures] is called.
func (h *MemoryHub) FailSendsTo(pubkey string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[pubkey] = err
}

// ClearFailures removes all injected failures.
func (h *MemoryHub) ClearFailures() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.failures)
}

// Sent returns every envelope accepted by the hub, in send order.
func (h *MemoryHub) Sent() []models.Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.sent)
}

// Drain removes and returns the envelopes queued for pubkey.
func (h *MemoryHub) Drain(pubkey string) []models.Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()

	mb := h.mailboxLocked(pubkey)
	out := mb.queue
	mb.queue = nil

	return out
}

// Pending reports how many envelopes are queued for pubkey.
func (h *MemoryHub) Pending(pubkey string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.mailboxLocked(pubkey).queue)
}

func (h *MemoryHub) mailboxLocked(pubkey string) *mailbox {
	mb, ok := h.mailboxes[pubkey]
	if !ok {
		mb = &mailbox{notify: make(chan struct{}, 1)}
		h.mailboxes[pubkey] = mb
	}
	return mb
}

func (h *MemoryHub) deliver(from, to string, payload []byte) (string, error) {
	if to == "" {
		return "", ErrEmptyRecipient
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.failures[to]; err != nil {
		return "", fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	env := models.Envelope{
		ID:         h.ids.Generate(),
		FromPubkey: from,
		ToPubkey:   to,
		Payload:    slices.Clone(payload),
		CreatedAt:  h.now().UTC(),
	}
	h.sent = append(h.sent, env)

	mb := h.mailboxLocked(to)
	mb.queue = append(mb.queue, env)
	select {
	case mb.notify <- struct{}{}:
	default:
	}

	return env.ID, nil
}

// requeue puts undelivered envelopes back at the head of pubkey's queue.
func (h *MemoryHub) requeue(pubkey string, envs []models.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	mb := h.mailboxLocked(pubkey)
	mb.queue = append(slices.Clone(envs), mb.queue...)
}

// Endpoint is the [Gateway] of one pubkey on a [MemoryHub].
type Endpoint struct {
	hub    *MemoryHub
	pubkey string
}

// Pubkey returns the endpoint's own key.
func (e *Endpoint) Pubkey() string {
	return e.pubkey
}

func (e *Endpoint) SendEnvelope(ctx context.Context, to string, payload []byte, _ []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.hub.deliver(e.pubkey, to, payload)
}

func (e *Endpoint) Inbound(ctx context.Context) (<-chan models.Envelope, error) {
	e.hub.mu.Lock()
	mb := e.hub.mailboxLocked(e.pubkey)
	if mb.active {
		e.hub.mu.Unlock()
		return nil, ErrInboundActive
	}
	mb.active = true
	e.hub.mu.Unlock()

	out := make(chan models.Envelope)
	go func() {
		defer func() {
			e.hub.mu.Lock()
			mb.active = false
			e.hub.mu.Unlock()
			close(out)
		}()

		for {
			batch := e.hub.Drain(e.pubkey)
			for i, env := range batch {
				select {
				case out <- env:
				case <-ctx.Done():
					e.hub.requeue(e.pubkey, batch[i:])
					return
				}
			}

			select {
			case <-mb.notify:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
