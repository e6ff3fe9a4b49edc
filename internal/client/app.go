package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/workers"
)

// App is the device runtime: local storages, services and the inbound
// listener bound to one gateway.
type App struct {
	pubkey   string
	storages *store.ClientStorages
	services *service.Services
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local store and connects to the configured relay.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gw, err := gateway.NewRelayGateway(cfg.Gateway, cfg.App.Pubkey, cfg.Workers.InboundPollInterval, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create relay gateway: %w", err)
	}

	sealer, err := crypto.NewContentSealer(cfg.App.VaultPassphrase)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create content sealer: %w", err)
	}

	return newApp(cfg.App, storages, gw, sealer, log), nil
}

func newApp(appCfg config.ClientApp, storages *store.ClientStorages, gw gateway.Gateway, sealer crypto.ContentSealer, log *logger.Logger, opts ...service.Option) *App {
	services := service.NewServices(appCfg, storages, gw, sealer, opts...)

	return &App{
		pubkey:   appCfg.Pubkey,
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(workers.NewInboundListener(gw, services.Dispatcher, log)),
		logger:   log,
	}
}

func (a *App) Pubkey() string {
	return a.pubkey
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) Listen(ctx context.Context) error {
	if err := a.workers.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	defer a.workers.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
