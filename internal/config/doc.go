// Package config provides configuration loading, merging, and validation
// for the steward CLI and the relay.
//
// Configuration is assembled from several layers, later layers overriding
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (relay only; the CLI maps its own cobra flags)
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetRelayConfig].
package config
