package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

var (
	errAddressFormat = errors.New("address must look like host:port")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errHostNotIP     = errors.New("host must be an IP address or localhost")
)

// NetAddress is a flag.Value for the relay listen address.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the relay command line.
//
//	-a               listen address, host:port
//	-d               postgres DSN
//	-c, -config      JSON config file
//	-token-sign-key  HMAC key for sender tokens
//	-token-issuer    expected token issuer
//	-request-timeout per-request timeout, e.g. 30s
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		addr   NetAddress
		cfg    StructuredConfig
		server = &cfg.Server
	)

	fs := flag.NewFlagSet("relay", flag.ContinueOnError)
	fs.Var(&addr, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "postgres DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&server.TokenSignKey, "token-sign-key", "", "sender token signing key")
	fs.StringVar(&server.TokenIssuer, "token-issuer", "", "sender token issuer")
	fs.DurationVar(&server.RequestTimeout, "request-timeout", 0, "request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	server.HTTPAddress = addr.String()

	return &cfg, nil
}

// String renders host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, localhost or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errHostNotIP
	}

	a.Host, a.Port = host, port
	return nil
}
