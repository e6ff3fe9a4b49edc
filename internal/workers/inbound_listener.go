package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
)

// InboundListener feeds every envelope the gateway delivers to the
// dispatcher. Envelopes are handled one at a time in arrival order.
type InboundListener struct {
	gateway    gateway.Gateway
	dispatcher service.Dispatcher
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInboundListener creates a listener that is idle until Start is called.
func NewInboundListener(gw gateway.Gateway, dispatcher service.Dispatcher, log *logger.Logger) *InboundListener {
	return &InboundListener{gateway: gw, dispatcher: dispatcher, logger: log}
}

// Start stops any previous run, opens the inbound stream and dispatches
// from it in the background until ctx is cancelled, Stop is called or the
// gateway closes the stream.
func (l *InboundListener) Start(ctx context.Context) error {
	l.Stop()

	l.mu.Lock()
	defer l.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	inbound, err := l.gateway.Inbound(jobCtx)
	if err != nil {
		cancel()
		return err
	}
	l.cancel = cancel
	l.wg.Add(1)

	go func() {
		defer l.wg.Done()
		dispatchCtx := l.logger.WithContext(jobCtx)

		for env := range inbound {
			if err := l.dispatcher.Dispatch(dispatchCtx, env); err != nil {
				l.logger.Err(err).
					Str("func", "*InboundListener.Start").
					Str("envelope_id", env.ID).
					Str("from", env.FromPubkey).
					Msg("envelope handling failed")
			}
		}
		l.logger.Debug().Str("func", "*InboundListener.Start").Msg("inbound stream closed")
	}()

	l.logger.Info().Str("func", "*InboundListener.Start").Msg("listening for envelopes")
	return nil
}

// Stop cancels the listener and waits for the in-flight envelope to finish.
func (l *InboundListener) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}
