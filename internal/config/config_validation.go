// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/validators"
)

func (cfg *ClientConfig) validate() error {
	if !validators.IsValidPubkey(cfg.App.Pubkey) {
		return fmt.Errorf("%w: pubkey must be 64 hex characters", ErrInvalidAppConfigs)
	}
	if cfg.App.VaultPassphrase == "" {
		return fmt.Errorf("%w: vault passphrase is required", ErrInvalidAppConfigs)
	}
	if cfg.App.RecoveryExpiration <= 0 || cfg.App.FanOutLimit < 1 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// the relay gateway is optional; without it the CLI works offline
	if cfg.Gateway.RelayURL != "" {
		if cfg.Gateway.SignKey == "" || cfg.Gateway.RequestTimeout <= 0 || cfg.Gateway.TokenDuration <= 0 {
			return ErrInvalidGatewayConfigs
		}
		if cfg.Gateway.RetryCount < 0 {
			return ErrInvalidGatewayConfigs
		}
		if cfg.Workers.InboundPollInterval <= 0 {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}

func (cfg *RelayConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.TokenSignKey == "" || cfg.Server.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidServerConfigs)
	}

	return nil
}
