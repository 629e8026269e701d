package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/store"

	dghoauth1 "github.com/dghubble/oauth1"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), config.DatabaseDriverSQLite, ":memory:",
		&config.Config{SecretKey: "services-test"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeTestUser(t *testing.T, s *store.Store) *models.UserProfile {
	t.Helper()
	u := &models.UserProfile{Email: uuid.NewString()[:8] + "@example.com"}
	require.NoError(t, u.SetPassword("password"))
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

// oauthEnv is an httptest server exposing the OAuthService flows the way
// the real handlers do, plus a dghubble client config pointed at it.
type oauthEnv struct {
	store  *store.Store
	svc    *OAuthService
	ts     *httptest.Server
	user   *models.UserProfile
	access *models.Access
	client *dghoauth1.Config
}

func newOAuthEnv(t *testing.T, twoLegged bool) *oauthEnv {
	t.Helper()
	env := &oauthEnv{store: setupTestStore(t)}

	mux := http.NewServeMux()
	writeToken := func(w http.ResponseWriter, tok *models.Token, extra url.Values) {
		v := url.Values{"oauth_token": {tok.Key}, "oauth_token_secret": {tok.Secret}}
		for k, vs := range extra {
			v[k] = vs
		}
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte(v.Encode()))
	}
	mux.HandleFunc("/oauth/token/", func(w http.ResponseWriter, r *http.Request) {
		tok, err := env.svc.IssueRequestToken(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeToken(w, tok, url.Values{"oauth_callback_confirmed": {"true"}})
	})
	mux.HandleFunc("/oauth/register/", func(w http.ResponseWriter, r *http.Request) {
		tok, err := env.svc.IssueAccessToken(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeToken(w, tok, nil)
	})
	mux.HandleFunc("/api/v1/whoami/", func(w http.ResponseWriter, r *http.Request) {
		user, err := env.svc.AuthenticateResource(r.Context(), r, "")
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(err.Error()))
			return
		}
		_, _ = w.Write([]byte(user.Email))
	})
	env.ts = httptest.NewServer(mux)
	t.Cleanup(env.ts.Close)

	cfg := &config.Config{SiteURL: env.ts.URL, OAuthTwoLeggedEnabled: twoLegged}
	server := oauth1.NewServer(oauth1.NewStoreValidator(env.store, nil))
	env.svc = NewOAuthService(env.store, server, cfg, nil, nil)

	env.user = makeTestUser(t, env.store)
	access, err := NewAccessService(env.store, nil).
		CreateForUser(context.Background(), env.user, "Test App", "https://client.example.com/cb")
	require.NoError(t, err)
	env.access = access

	env.client = &dghoauth1.Config{
		ConsumerKey:    access.Key,
		ConsumerSecret: access.PlainSecret,
		CallbackURL:    "oob",
		Endpoint: dghoauth1.Endpoint{
			RequestTokenURL: env.ts.URL + "/oauth/token/",
			AuthorizeURL:    env.ts.URL + "/oauth/authorize/",
			AccessTokenURL:  env.ts.URL + "/oauth/register/",
		},
	}
	return env
}

// twoLeggedRequest signs a request with consumer credentials only.
func twoLeggedRequest(t *testing.T, siteURL, method, target, key, secret string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	params := map[string]string{
		oauth1.ParamConsumerKey:     key,
		oauth1.ParamSignatureMethod: oauth1.SignatureMethodHMACSHA1,
		oauth1.ParamTimestamp:       strconv.FormatInt(time.Now().Unix(), 10),
		oauth1.ParamNonce:           uuid.NewString(),
		oauth1.ParamVersion:         "1.0",
	}

	unsigned, err := oauth1.ParseRequest(r, siteURL)
	require.NoError(t, err)
	all := append([]oauth1.Param{}, unsigned.Params...)
	for k, v := range params {
		all = append(all, oauth1.Param{Key: k, Value: v, Source: oauth1.SourceHeader})
	}
	signer := &dghoauth1.HMACSigner{ConsumerSecret: secret}
	sig, err := signer.Sign("", oauth1.SignatureBaseString(method, unsigned.URI, all))
	require.NoError(t, err)
	params[oauth1.ParamSignature] = sig

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + `="` + dghoauth1.PercentEncode(params[k]) + `"`
	}
	r.Header.Set("Authorization", "OAuth "+strings.Join(parts, ", "))
	return r
}
