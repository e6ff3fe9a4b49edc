package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"pubkey": "` + testPubkey + `",
			"display_name": "alice",
			"vault_passphrase": "secret",
			"relays": ["wss://a.example", "wss://b.example"],
			"recovery_expiration": "48h",
			"fan_out_limit": 4,
			"log_file": "/tmp/client.log"
		},
		"storage": {
			"db": { "dsn": "/tmp/vaults.db" }
		},
		"gateway": {
			"relay_url": "http://localhost:8080",
			"sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"request_timeout": "10s",
			"retry_count": 2
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"token_sign_key": "server_secret",
			"token_issuer": "server_issuer"
		},
		"workers": {
			"inbound_poll_interval": "3s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, testPubkey, cfg.App.Pubkey)
	assert.Equal(t, "alice", cfg.App.DisplayName)
	assert.Equal(t, "secret", cfg.App.VaultPassphrase)
	assert.Equal(t, []string{"wss://a.example", "wss://b.example"}, cfg.App.Relays)
	assert.Equal(t, 48*time.Hour, cfg.App.RecoveryExpiration)
	assert.Equal(t, 4, cfg.App.FanOutLimit)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)

	assert.Equal(t, "/tmp/vaults.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://localhost:8080", cfg.Gateway.RelayURL)
	assert.Equal(t, "jwt_secret", cfg.Gateway.SignKey)
	assert.Equal(t, "test_issuer", cfg.Gateway.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Gateway.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, 2, cfg.Gateway.RetryCount)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "server_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, "server_issuer", cfg.Server.TokenIssuer)

	assert.Equal(t, 3*time.Second, cfg.Workers.InboundPollInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"recovery_expiration": "later"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bool", input: `true`, wantErr: true},
		{name: "bad string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(data))
}
