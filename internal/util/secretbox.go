package util

import (
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const secretBoxInfo = "api:access:secret"

var ErrSecretBoxCorrupt = errors.New("sealed secret is malformed")

// SecretBox seals API consumer secrets at rest with XChaCha20-Poly1305
// under a key derived from SECRET_KEY.
type SecretBox struct {
	aead cipher.AEAD
}

func NewSecretBox(secretKey string) (*SecretBox, error) {
	if secretKey == "" {
		return nil, errors.New("secret box requires a non-empty key")
	}
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, []byte(secretKey), nil, []byte(secretBoxInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive secret box key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &SecretBox{aead: aead}, nil
}

// Seal encrypts plaintext and returns base64(nonce || ciphertext).
func (b *SecretBox) Seal(plaintext string) (string, error) {
	nonce, err := CryptoRandomBytes(int64(b.aead.NonceSize()))
	if err != nil {
		return "", err
	}
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (b *SecretBox) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSecretBoxCorrupt, err)
	}
	ns := b.aead.NonceSize()
	if len(raw) < ns+b.aead.Overhead() {
		return "", ErrSecretBoxCorrupt
	}
	plain, err := b.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSecretBoxCorrupt, err)
	}
	return string(plain), nil
}
