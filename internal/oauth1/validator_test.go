package oauth1

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLengthChecks(t *testing.T) {
	assert.False(t, CheckNonce("abcdef"))
	assert.True(t, CheckNonce("abcdefg"))
	assert.True(t, CheckNonce(strings.Repeat("n", 128)))
	assert.False(t, CheckNonce(strings.Repeat("n", 129)))

	assert.False(t, CheckClientKey("short"))
	assert.True(t, CheckClientKey("mkt:1:a@b.c:0"))
	assert.False(t, CheckRequestToken("1234567"))
	assert.True(t, CheckAccessToken("12345678"))
	assert.False(t, CheckVerifier("verifier\n"), "control characters are not printable")
	assert.False(t, CheckVerifier("vérifier0"), "non-ASCII is rejected")
}

func TestStoreValidator_Secrets(t *testing.T) {
	f := newFixture(t)
	v := NewStoreValidator(f.store, nil)
	ctx := context.Background()

	assert.True(t, v.ValidateClientKey(ctx, testClientKey))
	assert.False(t, v.ValidateClientKey(ctx, "mkt:unknown"))

	hit := v.GetClientSecret(ctx, testClientKey)
	miss := v.GetClientSecret(ctx, "mkt:unknown")
	assert.Equal(t, testClientSecret, hit)
	assert.Equal(t, DummySecret, miss)
	assert.Len(t, hit, SecretLength)
	assert.Len(t, miss, SecretLength)

	assert.Equal(t, testRequestSec, v.GetRequestTokenSecret(ctx, testClientKey, testRequestKey))
	assert.Equal(t, DummySecret, v.GetRequestTokenSecret(ctx, testClientKey, testAccessKey),
		"an access token is not a request token")
	assert.Equal(t, testAccessSec, v.GetAccessTokenSecret(ctx, testClientKey, testAccessKey))
	assert.Equal(t, DummySecret, v.GetAccessTokenSecret(ctx, DummyClientKey, testAccessKey))
}

func TestStoreValidator_Tokens(t *testing.T) {
	f := newFixture(t)
	v := NewStoreValidator(f.store, nil)
	ctx := context.Background()

	assert.True(t, v.ValidateRequestToken(ctx, testClientKey, testRequestKey))
	assert.False(t, v.ValidateRequestToken(ctx, testClientKey, testAccessKey))
	assert.True(t, v.ValidateAccessToken(ctx, testClientKey, testAccessKey))
	assert.False(t, v.ValidateAccessToken(ctx, "mkt:other:key", testAccessKey))

	assert.True(t, v.ValidateVerifier(ctx, testClientKey, testRequestKey, testVerifier))
	assert.False(t, v.ValidateVerifier(ctx, testClientKey, testRequestKey, "verifier0002"))
	assert.False(t, v.ValidateVerifier(ctx, testClientKey, DummyRequestToken, testVerifier))
	assert.False(t, v.ValidateVerifier(ctx, testClientKey, DummyRequestToken, ""))
}

// Existence checks issue the same queries whether or not the token exists.
func TestStoreValidator_TokenQueriesUniform(t *testing.T) {
	f := newFixture(t)
	v := NewStoreValidator(f.store, nil)
	ctx := context.Background()

	var queries atomic.Int32
	count := func(*gorm.DB) { queries.Add(1) }
	db := f.store.DB()
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:count_query", count))
	require.NoError(t, db.Callback().Row().After("gorm:row").Register("test:count_row", count))
	require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:count_raw", count))

	measure := func(fn func()) int32 {
		queries.Store(0)
		fn()
		return queries.Load()
	}

	hit := measure(func() { v.ValidateAccessToken(ctx, testClientKey, testAccessKey) })
	miss := measure(func() { v.ValidateAccessToken(ctx, testClientKey, "missingtoken") })
	assert.Equal(t, hit, miss)
	assert.Positive(t, hit)

	hit = measure(func() { v.ValidateRequestToken(ctx, testClientKey, testRequestKey) })
	miss = measure(func() { v.ValidateRequestToken(ctx, "mkt:unknown", testRequestKey) })
	assert.Equal(t, hit, miss)

	hit = measure(func() { v.GetClientSecret(ctx, testClientKey) })
	miss = measure(func() { v.GetClientSecret(ctx, "mkt:unknown") })
	assert.Equal(t, hit, miss)
}

func TestStoreValidator_NonceReplay(t *testing.T) {
	f := newFixture(t)
	v := NewStoreValidator(f.store, nil)
	ctx := context.Background()

	assert.True(t, v.ValidateTimestampAndNonce(ctx, testClientKey, 100, "nonce-one", "", ""))
	assert.False(t, v.ValidateTimestampAndNonce(ctx, testClientKey, 100, "nonce-one", "", ""))
	assert.True(t, v.ValidateTimestampAndNonce(ctx, testClientKey, 101, "nonce-one", "", ""))
	assert.True(t, v.ValidateTimestampAndNonce(ctx, testClientKey, 100, "nonce-one", "", testAccessKey))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v.ValidateTimestampAndNonce(ctx, testClientKey, 200, "race-nonce", testRequestKey, "") {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load(), "exactly one concurrent caller wins")
}
