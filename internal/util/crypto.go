package util

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // required by the shared-secret scheme
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CryptoRandomBytes generates cryptographically secure random bytes
func CryptoRandomBytes(length int64) ([]byte, error) {
	buf := make([]byte, length)
	_, err := rand.Read(buf)
	return buf, err
}

// RandomString returns length characters drawn uniformly from [a-zA-Z0-9].
// Token keys, secrets and verifiers are all minted with it.
func RandomString(length int) (string, error) {
	max := big.NewInt(int64(len(alphanumeric)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}

// GenerateKey returns the hex encoding of n random bytes.
func GenerateKey(n int) (string, error) {
	b, err := CryptoRandomBytes(int64(n))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SHA256Hex returns the SHA-256 hash of s as a lowercase hex string.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA1Hex returns the SHA-1 hash of s as a lowercase hex string.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
