// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source.
const (
	DefaultRecoveryExpiration = 24 * time.Hour
	DefaultRequestTimeout     = 15 * time.Second
	DefaultRetryCount         = 3
	DefaultPollInterval       = 5 * time.Second
	DefaultTokenIssuer        = "steward-relay"
	DefaultTokenDuration      = time.Hour
	DefaultFanOutLimit        = 8
	DefaultRelayAddress       = "localhost:8080"
)

// StructuredConfig is the top-level configuration container shared by the
// client CLI and the relay. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the device identity and protocol settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Gateway holds the relay client settings used by the CLI.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Server holds the relay HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the identity of this device and protocol defaults.
type App struct {
	// Pubkey is this device's 64-char hex public key.
	// Env: APP_PUBKEY
	Pubkey string `env:"PUBKEY"`

	// DisplayName is shown to stewards as the owner name.
	// Env: APP_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// VaultPassphrase seals vault content at rest.
	// Env: APP_VAULT_PASSPHRASE
	VaultPassphrase string `env:"VAULT_PASSPHRASE"`

	// Relays is the default relay list attached to invitations and shards.
	// Env: APP_RELAYS (comma separated)
	Relays []string `env:"RELAYS" envSeparator:","`

	// RecoveryExpiration is the default lifetime of a recovery request.
	// Env: APP_RECOVERY_EXPIRATION
	RecoveryExpiration time.Duration `env:"RECOVERY_EXPIRATION"`

	// FanOutLimit bounds concurrent sends when distributing shards or
	// recovery requests.
	// Env: APP_FAN_OUT_LIMIT
	FanOutLimit int `env:"FAN_OUT_LIMIT"`

	// LogFile is where the CLI writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is an SQLite file path for the client or a PostgreSQL URI for
	// the relay. ":memory:" selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Gateway configures the relay client.
type Gateway struct {
	// RelayURL is the base URL of the relay used for sending and polling.
	// Env: GATEWAY_RELAY_URL
	RelayURL string `env:"RELAY_URL"`

	// SignKey signs the bearer token presented to the relay.
	// Env: GATEWAY_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// TokenIssuer is the "iss" claim expected by the relay.
	// Env: GATEWAY_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of each bearer token.
	// Env: GATEWAY_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequestTimeout bounds a single HTTP call to the relay.
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport retries per call.
	// Env: GATEWAY_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Server holds relay server settings.
type Server struct {
	// HTTPAddress is the "host:port" the relay listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey verifies client bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Workers holds background worker settings.
type Workers struct {
	// InboundPollInterval is how often the relay mailbox is polled.
	// Env: WORKERS_INBOUND_POLL_INTERVAL
	InboundPollInterval time.Duration `env:"INBOUND_POLL_INTERVAL"`
}

// defaults returns the lowest-priority config layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RecoveryExpiration: DefaultRecoveryExpiration,
			FanOutLimit:        DefaultFanOutLimit,
		},
		Gateway: Gateway{
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Server: Server{
			HTTPAddress:    DefaultRelayAddress,
			RequestTimeout: DefaultRequestTimeout,
			TokenIssuer:    DefaultTokenIssuer,
		},
		Workers: Workers{
			InboundPollInterval: DefaultPollInterval,
		},
	}
}
