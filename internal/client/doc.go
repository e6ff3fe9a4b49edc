// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the steward command-line client.
//
// It wires the local vault store, the relay gateway, the custody services
// and the inbound listener into a single device runtime, and exposes the
// protocol operations as a cobra command tree.
package client
