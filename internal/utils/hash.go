package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. The relay gateway sends it in the HashSHA256
// header so the relay can reject bodies altered in transit.
//
// Example usage:
//
//	signature := utils.HashString(body, "my-secret-key")
func HashString(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualHash compares two hex signatures in constant time.
func EqualHash(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// SHA256Hex returns the lowercase hex SHA-256 digest of data.
// It is the integrity hash stored on a backup configuration and checked
// after reconstruction.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
