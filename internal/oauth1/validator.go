package oauth1

import (
	"context"
	"errors"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"go.uber.org/zap"
)

// Stand-in values used when a presented credential is unknown, so the
// failure path performs the same lookups and signature work as success.
const (
	DummyClientKey    = "DummyOAuthClientKeyString"
	DummyRequestToken = "DummyOAuthRequestToken"
	DummyAccessToken  = "DummyOAuthAccessToken"
	DummySecret       = "DummyOAuthSecret"

	// SecretLength is the length of every minted secret; it matches
	// DummySecret so hits and misses return the same shape.
	SecretLength = len(DummySecret)
)

type bounds struct{ min, max int }

var (
	nonceLength        = bounds{7, 128}
	clientKeyLength    = bounds{8, 128}
	requestTokenLength = bounds{8, 128}
	accessTokenLength  = bounds{8, 128}
	verifierLength     = bounds{8, 128}
)

// check reports whether v is within b and made of printable ASCII.
func (b bounds) check(v string) bool {
	if len(v) < b.min || len(v) > b.max {
		return false
	}
	for i := 0; i < len(v); i++ {
		if c := v[i]; c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

func CheckNonce(v string) bool        { return nonceLength.check(v) }
func CheckClientKey(v string) bool    { return clientKeyLength.check(v) }
func CheckRequestToken(v string) bool { return requestTokenLength.check(v) }
func CheckAccessToken(v string) bool  { return accessTokenLength.check(v) }
func CheckVerifier(v string) bool     { return verifierLength.check(v) }

// Validator answers the yes/no questions the Server asks about a request.
// Implementations must do the same work whether or not a key exists.
type Validator interface {
	ValidateClientKey(ctx context.Context, key string) bool
	GetClientSecret(ctx context.Context, key string) string
	ValidateTimestampAndNonce(
		ctx context.Context,
		clientKey string,
		timestamp int64,
		nonce, requestToken, accessToken string,
	) bool
	ValidateRequestToken(ctx context.Context, clientKey, token string) bool
	ValidateAccessToken(ctx context.Context, clientKey, token string) bool
	ValidateVerifier(ctx context.Context, clientKey, token, verifier string) bool
	GetRequestTokenSecret(ctx context.Context, clientKey, token string) string
	GetAccessTokenSecret(ctx context.Context, clientKey, token string) string
}

// CredentialStore is the persistence StoreValidator needs.
type CredentialStore interface {
	AccessKeyExists(ctx context.Context, key string) (bool, error)
	GetAccessByKey(ctx context.Context, key string) (*models.Access, error)
	InsertNonce(ctx context.Context, nonce *models.Nonce) (bool, error)
	TokenExistsForClient(ctx context.Context, typ models.TokenType, clientKey, key string) (bool, error)
	GetTokenForClient(ctx context.Context, typ models.TokenType, clientKey, key string) (*models.Token, error)
}

// StoreValidator implements Validator on top of a CredentialStore.
type StoreValidator struct {
	store CredentialStore
	log   *zap.Logger
}

func NewStoreValidator(s CredentialStore, log *zap.Logger) *StoreValidator {
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreValidator{store: s, log: log}
}

var _ Validator = (*StoreValidator)(nil)

func (v *StoreValidator) ValidateClientKey(ctx context.Context, key string) bool {
	exists, err := v.store.AccessKeyExists(ctx, key)
	if err != nil {
		v.log.Error("client key lookup failed", zap.String("attempted_key", key), zap.Error(err))
		return false
	}
	return exists
}

func (v *StoreValidator) GetClientSecret(ctx context.Context, key string) string {
	access, err := v.store.GetAccessByKey(ctx, key)
	if err != nil {
		v.logLookup("client secret", err)
		return DummySecret
	}
	return access.PlainSecret
}

// ValidateTimestampAndNonce is true only when this exact tuple has never
// been recorded. Missing tokens are stored as "".
func (v *StoreValidator) ValidateTimestampAndNonce(
	ctx context.Context,
	clientKey string,
	timestamp int64,
	nonce, requestToken, accessToken string,
) bool {
	created, err := v.store.InsertNonce(ctx, &models.Nonce{
		Nonce:        nonce,
		Timestamp:    timestamp,
		ClientKey:    clientKey,
		RequestToken: requestToken,
		AccessToken:  accessToken,
	})
	if err != nil {
		v.log.Error("nonce insert failed", zap.Error(err))
		return false
	}
	return created
}

func (v *StoreValidator) ValidateRequestToken(ctx context.Context, clientKey, token string) bool {
	return v.tokenExists(ctx, models.TokenTypeRequest, clientKey, token)
}

func (v *StoreValidator) ValidateAccessToken(ctx context.Context, clientKey, token string) bool {
	return v.tokenExists(ctx, models.TokenTypeAccess, clientKey, token)
}

func (v *StoreValidator) tokenExists(ctx context.Context, typ models.TokenType, clientKey, token string) bool {
	exists, err := v.store.TokenExistsForClient(ctx, typ, clientKey, token)
	if err != nil {
		v.log.Error("token lookup failed", zap.Stringer("token_type", typ), zap.Error(err))
		return false
	}
	return exists
}

// ValidateVerifier compares through util.CompareSecrets on both the hit
// and the miss path.
func (v *StoreValidator) ValidateVerifier(ctx context.Context, clientKey, token, verifier string) bool {
	var expected *string
	t, err := v.store.GetTokenForClient(ctx, models.TokenTypeRequest, clientKey, token)
	if err != nil {
		v.logLookup("verifier", err)
	} else {
		expected = t.Verifier
	}
	return util.CompareSecrets(expected, verifier)
}

func (v *StoreValidator) GetRequestTokenSecret(ctx context.Context, clientKey, token string) string {
	return v.tokenSecret(ctx, models.TokenTypeRequest, clientKey, token)
}

func (v *StoreValidator) GetAccessTokenSecret(ctx context.Context, clientKey, token string) string {
	return v.tokenSecret(ctx, models.TokenTypeAccess, clientKey, token)
}

func (v *StoreValidator) tokenSecret(ctx context.Context, typ models.TokenType, clientKey, token string) string {
	t, err := v.store.GetTokenForClient(ctx, typ, clientKey, token)
	if err != nil {
		v.logLookup(typ.String()+" token secret", err)
		return DummySecret
	}
	return t.Secret
}

// logLookup stays quiet for plain misses, which are expected.
func (v *StoreValidator) logLookup(what string, err error) {
	if errors.Is(err, store.ErrRecordNotFound) {
		return
	}
	v.log.Error(what+" lookup failed", zap.Error(err))
}
