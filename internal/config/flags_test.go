package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantStr string
		wantErr error
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}, wantStr: "localhost:8080"},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}, wantStr: "127.0.0.1:9090"},
		{name: "ipv6", input: "[::1]:443", want: NetAddress{Host: "::1", Port: 443}, wantStr: "[::1]:443"},
		{name: "all interfaces", input: ":8081", want: NetAddress{Port: 8081}, wantStr: ":8081"},
		{name: "no port", input: "localhost", wantErr: errAddressFormat},
		{name: "port not a number", input: "localhost:http", wantErr: errAddressFormat},
		{name: "port zero", input: "localhost:0", wantErr: errPortRange},
		{name: "port too large", input: "localhost:70000", wantErr: errPortRange},
		{name: "hostname", input: "relay.example:8080", wantErr: errHostNotIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NetAddress{}, addr, "failed Set leaves the address untouched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.wantStr, addr.String())
		})
	}
}

func TestNetAddress_StringUnset(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "0.0.0.0:8080",
		"-d", "postgres://relay@localhost/mailbox",
		"-config", "/etc/relay.json",
		"-token-sign-key", "k",
		"-token-issuer", "relay",
		"-request-timeout", "45s",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://relay@localhost/mailbox", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/relay.json", cfg.JSONFilePath)
	assert.Equal(t, "k", cfg.Server.TokenSignKey)
	assert.Equal(t, "relay", cfg.Server.TokenIssuer)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-verbose"}},
		{name: "missing value", args: []string{"-d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
