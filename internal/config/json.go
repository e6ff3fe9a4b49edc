package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		Pubkey             string   `json:"pubkey"`
		DisplayName        string   `json:"display_name"`
		VaultPassphrase    string   `json:"vault_passphrase"`
		Relays             []string `json:"relays"`
		RecoveryExpiration Duration `json:"recovery_expiration"`
		FanOutLimit        int      `json:"fan_out_limit"`
		LogFile            string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Gateway struct {
		RelayURL       string   `json:"relay_url"`
		SignKey        string   `json:"sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"gateway,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
	} `json:"server,omitempty"`

	Workers struct {
		InboundPollInterval Duration `json:"inbound_poll_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Pubkey:             jsonCfg.App.Pubkey,
			DisplayName:        jsonCfg.App.DisplayName,
			VaultPassphrase:    jsonCfg.App.VaultPassphrase,
			Relays:             jsonCfg.App.Relays,
			RecoveryExpiration: time.Duration(jsonCfg.App.RecoveryExpiration),
			FanOutLimit:        jsonCfg.App.FanOutLimit,
			LogFile:            jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Gateway: Gateway{
			RelayURL:       jsonCfg.Gateway.RelayURL,
			SignKey:        jsonCfg.Gateway.SignKey,
			TokenIssuer:    jsonCfg.Gateway.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.Gateway.TokenDuration),
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
			RetryCount:     jsonCfg.Gateway.RetryCount,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TokenSignKey:   jsonCfg.Server.TokenSignKey,
			TokenIssuer:    jsonCfg.Server.TokenIssuer,
		},
		Workers: Workers{
			InboundPollInterval: time.Duration(jsonCfg.Workers.InboundPollInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
