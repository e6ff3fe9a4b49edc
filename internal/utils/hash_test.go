// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := []byte(`{"id":"1","to":"ab","payload":{"type":"shard_data"}}`)

	got := HashString(data, testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	if HashString(data, "key-one") == HashString(data, "key-two") {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

func TestHashString_Deterministic(t *testing.T) {
	data := []byte("payload")

	if HashString(data, testHashKey) != HashString(data, testHashKey) {
		t.Error("same payload must produce same hash")
	}
}

func TestEqualHash(t *testing.T) {
	h := HashString([]byte("a"), testHashKey)

	if !EqualHash(h, h) {
		t.Error("expected equal hashes to compare equal")
	}
	if EqualHash(h, HashString([]byte("b"), testHashKey)) {
		t.Error("expected different hashes to compare unequal")
	}
}

func TestSHA256Hex_KnownVector(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := SHA256Hex([]byte("abc")); got != want {
		t.Errorf("SHA256Hex(abc) = %s, want %s", got, want)
	}
}
