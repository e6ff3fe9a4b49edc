package config

import (
	"fmt"
	"time"
)

// ClientApp holds the device identity and protocol defaults for the CLI.
type ClientApp struct {
	Pubkey             string
	DisplayName        string
	VaultPassphrase    string
	Relays             []string
	RecoveryExpiration time.Duration
	FanOutLimit        int
	LogFile            string
}

// ClientGateway holds relay client settings.
type ClientGateway struct {
	RelayURL       string
	SignKey        string
	TokenIssuer    string
	TokenDuration  time.Duration
	RequestTimeout time.Duration
	RetryCount     int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or ":memory:" for a throwaway store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	InboundPollInterval time.Duration
}

// ClientConfig is the CLI configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Gateway ClientGateway
	Storage ClientStorage
	Workers ClientWorkers
}

// RelayConfig is the relay server configuration.
type RelayConfig struct {
	Server  Server
	Storage Storage
}

// GetClientConfig merges defaults, environment and the JSON file at
// jsonPath (or $CONFIG when jsonPath is empty) into a validated
// [ClientConfig].
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfigPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// GetRelayConfig merges defaults, environment, command-line args and the
// optional JSON file into a validated [RelayConfig].
func GetRelayConfig(args []string) (*RelayConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := &RelayConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return relayCfg, relayCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Pubkey:             cfg.App.Pubkey,
			DisplayName:        cfg.App.DisplayName,
			VaultPassphrase:    cfg.App.VaultPassphrase,
			Relays:             cfg.App.Relays,
			RecoveryExpiration: cfg.App.RecoveryExpiration,
			FanOutLimit:        cfg.App.FanOutLimit,
			LogFile:            cfg.App.LogFile,
		},
		Gateway: ClientGateway{
			RelayURL:       cfg.Gateway.RelayURL,
			SignKey:        cfg.Gateway.SignKey,
			TokenIssuer:    cfg.Gateway.TokenIssuer,
			TokenDuration:  cfg.Gateway.TokenDuration,
			RequestTimeout: cfg.Gateway.RequestTimeout,
			RetryCount:     cfg.Gateway.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			InboundPollInterval: cfg.Workers.InboundPollInterval,
		},
	}
}
