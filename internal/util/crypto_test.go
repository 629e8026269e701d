package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandomBytes(t *testing.T) {
	t.Run("Generate correct length", func(t *testing.T) {
		bytes, err := CryptoRandomBytes(20)
		require.NoError(t, err)
		assert.Len(t, bytes, 20)
	})

	t.Run("Generate unique values", func(t *testing.T) {
		bytes1, err := CryptoRandomBytes(20)
		require.NoError(t, err)

		bytes2, err := CryptoRandomBytes(20)
		require.NoError(t, err)

		assert.NotEqual(t, bytes1, bytes2, "Random bytes should not be identical")
	})
}

func TestRandomString(t *testing.T) {
	str, err := RandomString(12)
	require.NoError(t, err)
	assert.Len(t, str, 12)
	for _, c := range str {
		assert.True(t, strings.ContainsRune(alphanumeric, c), "Character '%c' is not alphanumeric", c)
	}

	other, err := RandomString(12)
	require.NoError(t, err)
	assert.NotEqual(t, str, other)
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey(48)
	require.NoError(t, err)
	assert.Len(t, key, 96)
}

func TestHexDigests(t *testing.T) {
	// echo -n "hello" | sha256sum
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", SHA256Hex("hello"))
	// echo -n "hello" | sha1sum
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", SHA1Hex("hello"))
}

func TestCompareSecrets(t *testing.T) {
	s := "verifier-123"
	empty := ""
	nul := "\x00\x00\x00"

	tests := []struct {
		name      string
		expected  *string
		candidate string
		want      bool
	}{
		{"match", &s, "verifier-123", true},
		{"mismatch", &s, "verifier-124", false},
		{"length mismatch", &s, "verifier", false},
		{"missing expected", nil, "verifier-123", false},
		{"missing expected with nul candidate", nil, nul, false},
		{"empty expected", &empty, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareSecrets(tt.expected, tt.candidate))
		})
	}
}

func TestSecretBox(t *testing.T) {
	box, err := NewSecretBox("a secret key")
	require.NoError(t, err)

	sealed, err := box.Seal("abcDEF123456")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "abcDEF123456")

	again, err := box.Seal("abcDEF123456")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "each seal uses a fresh nonce")

	plain, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "abcDEF123456", plain)

	other, err := NewSecretBox("another key")
	require.NoError(t, err)
	_, err = other.Open(sealed)
	require.ErrorIs(t, err, ErrSecretBoxCorrupt)

	_, err = box.Open("not base64!")
	require.ErrorIs(t, err, ErrSecretBoxCorrupt)

	_, err = NewSecretBox("")
	require.Error(t, err)
}
