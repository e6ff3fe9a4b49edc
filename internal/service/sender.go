package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

// sender executes outbound commands against the gateway.
type sender struct {
	gateway gateway.Gateway
	limit   int
}

func newSender(gw gateway.Gateway, limit int) *sender {
	if limit < 1 {
		limit = config.DefaultFanOutLimit
	}
	return &sender{gateway: gw, limit: limit}
}

// send delivers one envelope.
func (s *sender) send(ctx context.Context, out models.Outbound) models.DeliveryResult {
	result := models.DeliveryResult{To: out.To}

	payload, err := json.Marshal(out.Message)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		return result
	}

	result.EnvelopeID, result.Err = s.gateway.SendEnvelope(ctx, out.To, payload, out.Relays)
	if result.Err != nil {
		logger.FromContext(ctx).Warn().Err(result.Err).
			Str("func", "sender.send").
			Str("to", out.To).
			Msg("envelope delivery failed")
	}

	return result
}

// fanOut delivers every command concurrently, at most limit at a time. A
// failed delivery never cancels its siblings. Results keep the input order.
func (s *sender) fanOut(ctx context.Context, outs []models.Outbound) []models.DeliveryResult {
	results := make([]models.DeliveryResult, len(outs))

	var g errgroup.Group
	g.SetLimit(s.limit)
	for i, out := range outs {
		g.Go(func() error {
			results[i] = s.send(ctx, out)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func failedCount(results []models.DeliveryResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
