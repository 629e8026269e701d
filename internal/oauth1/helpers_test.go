package oauth1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/store"

	dghoauth1 "github.com/dghubble/oauth1"
	"github.com/stretchr/testify/require"
)

const (
	testSiteURL      = "http://api.example.com"
	testClientKey    = "mkt:1:dev@example.com:0"
	testClientSecret = "clientsecret0001"
	testRequestKey   = "requestkey0001"
	testRequestSec   = "requestsecret001"
	testVerifier     = "verifier0001"
	testAccessKey    = "accesskey00001"
	testAccessSec    = "accesssecret0001"
)

var testNow = time.Unix(1700000000, 0)

type fixture struct {
	store  *store.Store
	user   *models.UserProfile
	access *models.Access
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s, err := store.New(ctx, config.DatabaseDriverSQLite, ":memory:",
		&config.Config{SecretKey: "oauth1-test"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	user := &models.UserProfile{Email: "dev@example.com"}
	require.NoError(t, s.CreateUser(ctx, user))
	access := &models.Access{
		Key:         testClientKey,
		PlainSecret: testClientSecret,
		UserID:      user.ID,
		RedirectURI: "https://client.example.com/cb",
		AppName:     "Test",
	}
	require.NoError(t, s.CreateAccess(ctx, access))

	verifier := testVerifier
	require.NoError(t, s.CreateToken(ctx, &models.Token{
		TokenType: models.TokenTypeRequest, CredsID: access.ID,
		Key: testRequestKey, Secret: testRequestSec, Timestamp: testNow.Unix(),
		UserID: &user.ID, Verifier: &verifier,
	}))
	require.NoError(t, s.CreateToken(ctx, &models.Token{
		TokenType: models.TokenTypeAccess, CredsID: access.ID,
		Key: testAccessKey, Secret: testAccessSec, Timestamp: testNow.Unix(),
		UserID: &user.ID,
	}))
	return &fixture{store: s, user: user, access: access}
}

var nonceSeq struct {
	sync.Mutex
	n int
}

func nextNonce() string {
	nonceSeq.Lock()
	defer nonceSeq.Unlock()
	nonceSeq.n++
	return "nonce" + strconv.Itoa(100000+nonceSeq.n)
}

// oauthParams returns a fresh set of protocol parameters for clientKey.
func oauthParams(clientKey string, extra map[string]string) map[string]string {
	p := map[string]string{
		ParamConsumerKey:     clientKey,
		ParamSignatureMethod: SignatureMethodHMACSHA1,
		ParamTimestamp:       strconv.FormatInt(testNow.Unix(), 10),
		ParamNonce:           nextNonce(),
		ParamVersion:         "1.0",
	}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

// signedRequest builds a request carrying oauth in the Authorization
// header, signed with the given secrets.
func signedRequest(
	t *testing.T,
	method, target string,
	form url.Values,
	params map[string]string,
	clientSecret, tokenSecret string,
) *http.Request {
	t.Helper()
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	unsigned, err := ParseRequest(r, testSiteURL)
	require.NoError(t, err)
	all := append([]Param{}, unsigned.Params...)
	for k, v := range params {
		all = append(all, Param{Key: k, Value: v, Source: SourceHeader})
	}
	signer := &dghoauth1.HMACSigner{ConsumerSecret: clientSecret}
	sig, err := signer.Sign(tokenSecret, SignatureBaseString(method, unsigned.URI, all))
	require.NoError(t, err)

	keys := make([]string, 0, len(params)+1)
	withSig := map[string]string{ParamSignature: sig}
	for k, v := range params {
		withSig[k] = v
	}
	for k := range withSig {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = dghoauth1.PercentEncode(k) + `="` + dghoauth1.PercentEncode(withSig[k]) + `"`
	}
	r.Header.Set("Authorization", "OAuth "+strings.Join(parts, ", "))
	return r
}

func parse(t *testing.T, r *http.Request) *Request {
	t.Helper()
	req, err := ParseRequest(r, testSiteURL)
	require.NoError(t, err)
	return req
}

// spyValidator records the order of validator calls.
type spyValidator struct {
	Validator
	calls []string
}

func (s *spyValidator) ValidateClientKey(ctx context.Context, key string) bool {
	s.calls = append(s.calls, "ValidateClientKey")
	return s.Validator.ValidateClientKey(ctx, key)
}

func (s *spyValidator) GetClientSecret(ctx context.Context, key string) string {
	s.calls = append(s.calls, "GetClientSecret")
	return s.Validator.GetClientSecret(ctx, key)
}

func (s *spyValidator) ValidateTimestampAndNonce(
	ctx context.Context, clientKey string, ts int64, nonce, rt, at string,
) bool {
	s.calls = append(s.calls, "ValidateTimestampAndNonce")
	return s.Validator.ValidateTimestampAndNonce(ctx, clientKey, ts, nonce, rt, at)
}

func (s *spyValidator) ValidateAccessToken(ctx context.Context, clientKey, token string) bool {
	s.calls = append(s.calls, "ValidateAccessToken")
	return s.Validator.ValidateAccessToken(ctx, clientKey, token)
}

func (s *spyValidator) GetAccessTokenSecret(ctx context.Context, clientKey, token string) string {
	s.calls = append(s.calls, "GetAccessTokenSecret")
	return s.Validator.GetAccessTokenSecret(ctx, clientKey, token)
}
