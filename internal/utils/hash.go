package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	digest := utils.HashString("password", "sign-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualHash reports whether data hashes to the hex digest want under hashKey.
// The comparison is constant-time.
func EqualHash(data, hashKey, want string) bool {
	return hmac.Equal([]byte(HashString(data, hashKey)), []byte(want))
}
