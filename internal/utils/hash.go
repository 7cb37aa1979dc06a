package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	digest := utils.HashString("042917", "otp-hash-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHash reports whether HashString(data, hashKey) equals the hex digest
// expected. The comparison takes constant time.
func EqualHash(data, hashKey, expected string) bool {
	want, err := hex.DecodeString(expected)
	if err != nil {
		return false
	}

	return hmac.Equal(hashString([]byte(data), hashKey), want)
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
