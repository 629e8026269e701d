package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/mocks"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/payments"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/templates"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSecretKey = "handlers-test"
	testPassword  = "correct horse"
)

var csrfRe = regexp.MustCompile(`name="csrf_token" value="([^"]*)"`)

// testEnv is a live server wired the way the real router is, with the
// payment gateway mocked.
type testEnv struct {
	store  *store.Store
	users  *services.UserService
	access *services.AccessService
	gw     *mocks.MockGateway
	ts     *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := &testEnv{}

	var handler http.Handler
	env.ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(env.ts.Close)

	cfg := &config.Config{
		SecretKey:              testSecretKey,
		SiteURL:                env.ts.URL,
		OAuthTwoLeggedEnabled:  true,
		PaymentProviders:       []string{"reference"},
		DefaultPaymentProvider: "reference",
		Domain:                 "marketplace-test",
	}
	s, err := store.New(context.Background(), config.DatabaseDriverSQLite, ":memory:", cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	env.store = s

	env.users = services.NewUserService(s, nil, nil)
	env.access = services.NewAccessService(s, nil)
	oauthSvc := services.NewOAuthService(s, oauth1.NewServer(oauth1.NewStoreValidator(s, nil)), cfg, nil, nil)
	env.gw = mocks.NewMockGateway(gomock.NewController(t))
	registry := payments.NewRegistry(cfg, env.gw, s, nil, nil)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(sessions.Sessions("mkt_session", cookie.NewStore([]byte("session-secret"))))
	r.Use(
		middleware.APIBase(2),
		middleware.RestOAuth(oauthSvc, nil, nil),
		middleware.RestSharedSecret(env.users, testSecretKey, nil, nil),
	)

	oauthHandler := NewOAuthHandler(oauthSvc, nil)
	sessionHandler := NewSessionHandler(env.users, env.ts.URL, nil)
	accountHandler := NewAccountHandler(env.access, nil)
	paymentsHandler := NewPaymentsHandler(registry, s, nil)

	r.POST("/oauth/token/", oauthHandler.RequestToken)
	r.POST("/oauth/register/", oauthHandler.AccessToken)

	browser := r.Group("/", middleware.CSRF())
	browser.GET("/login", sessionHandler.LoginPage)
	browser.POST("/login", sessionHandler.Login)
	browser.GET("/logout", sessionHandler.Logout)
	authorize := browser.Group("/oauth/authorize", middleware.RequireLogin(env.users))
	authorize.GET("/", oauthHandler.AuthorizePage)
	authorize.POST("/", oauthHandler.Authorize)

	api := r.Group("/api/v2", middleware.RequireAPIUser())
	api.GET("/account/whoami/", accountHandler.WhoAmI)
	api.GET("/account/access/", accountHandler.ListAccess)
	api.POST("/account/access/", accountHandler.CreateAccess)
	api.DELETE("/account/access/:id/", accountHandler.DeleteAccess)
	api.GET("/payments/providers/", paymentsHandler.ListProviders)
	api.GET("/payments/accounts/", paymentsHandler.ListAccounts)
	api.POST("/payments/accounts/", paymentsHandler.CreateAccount)
	api.GET("/payments/accounts/:id/", paymentsHandler.GetAccount)
	api.PATCH("/payments/accounts/:id/", paymentsHandler.UpdateAccount)
	api.DELETE("/payments/accounts/:id/", paymentsHandler.DeleteAccount)
	api.GET("/payments/accounts/:id/terms/", paymentsHandler.GetTerms)
	api.POST("/payments/accounts/:id/terms/", paymentsHandler.AgreeTerms)
	api.POST("/payments/apps/:app_id/payment-accounts/", paymentsHandler.LinkApp)

	handler = middleware.MethodOverride(r)
	return env
}

func (env *testEnv) makeUser(t *testing.T) *models.UserProfile {
	t.Helper()
	user, err := env.users.CreateUser(context.Background(),
		uuid.NewString()[:8]+"@example.com", "Dev", testPassword)
	require.NoError(t, err)
	return user
}

// browser is a cookie-keeping client that does not follow redirects.
func (env *testEnv) browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// csrfFrom fetches page and returns the form's CSRF token.
func (env *testEnv) csrfFrom(t *testing.T, client *http.Client, page string) string {
	t.Helper()
	resp, body := send(t, client, http.MethodGet, env.ts.URL+page, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	m := csrfRe.FindStringSubmatch(body)
	require.Len(t, m, 2, "no csrf token in %s", page)
	return m[1]
}

func (env *testEnv) login(t *testing.T, client *http.Client, user *models.UserProfile) {
	t.Helper()
	token := env.csrfFrom(t, client, "/login")
	resp, body := postForm(t, client, env.ts.URL+"/login", url.Values{
		"email":      {user.Email},
		"password":   {testPassword},
		"csrf_token": {token},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode, body)
}

// sharedSecret returns the Authorization header a first-party frontend
// would send for user.
func sharedSecret(user *models.UserProfile) http.Header {
	return http.Header{
		"Authorization": {"mkt-shared-secret " + middleware.SharedSecretToken(user.Email, "device-1", testSecretKey)},
	}
}

func send(
	t *testing.T,
	client *http.Client,
	method, target string,
	header http.Header,
	body io.Reader,
) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) (*http.Response, string) {
	t.Helper()
	return send(t, client, http.MethodPost, target,
		http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		strings.NewReader(form.Encode()))
}

// apiJSON calls the API as user and decodes the JSON response.
func (env *testEnv) apiJSON(
	t *testing.T,
	user *models.UserProfile,
	method, path string,
	payload any,
) (int, map[string]any) {
	t.Helper()
	header := sharedSecret(user)
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = strings.NewReader(string(data))
		header.Set("Content-Type", "application/json")
	}
	resp, raw := send(t, http.DefaultClient, method, env.ts.URL+path, header, body)
	out := map[string]any{}
	if strings.TrimSpace(raw) != "" {
		require.NoError(t, json.Unmarshal([]byte(raw), &out), raw)
	}
	return resp.StatusCode, out
}
