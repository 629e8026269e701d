package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// getTestConfig returns a minimal config for testing
func getTestConfig() *config.Config {
	return &config.Config{
		SecretKey:         "store-test-secret",
		DefaultAdminEmail: "admin@example.com",
	}
}

// TestStoreWithSQLite tests store operations with SQLite
func TestStoreWithSQLite(t *testing.T) {
	testBasicOperations(t, config.DatabaseDriverSQLite, nil)
}

// TestStoreWithPostgres tests store operations with PostgreSQL
func TestStoreWithPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping PostgreSQL integration test in short mode")
	}

	// Recover from panic if Docker is not available
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Skipping PostgreSQL test: Docker not available (panic: %v)", r)
		}
	}()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("Skipping PostgreSQL test: Docker not available (%v)", err)
		return
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	testBasicOperations(t, config.DatabaseDriverPostgres, pgContainer)
}

// createFreshStore creates a new store instance for test isolation
// For SQLite, each call creates a fresh :memory: database
// For PostgreSQL, each call creates a uniquely-named database in the container
func createFreshStore(t *testing.T, driver string, pgContainer *postgres.PostgresContainer) *Store {
	t.Helper()

	var dsn string
	switch driver {
	case config.DatabaseDriverSQLite:
		dsn = ":memory:"
	case config.DatabaseDriverPostgres:
		dbName := "test_" + uuid.New().String()[:8]
		ctx := context.Background()

		_, _, err := pgContainer.Exec(
			ctx,
			[]string{"psql", "-U", "testuser", "-d", "testdb", "-c", "CREATE DATABASE " + dbName},
		)
		require.NoError(t, err)

		host, err := pgContainer.Host(ctx)
		require.NoError(t, err)
		port, err := pgContainer.MappedPort(ctx, "5432")
		require.NoError(t, err)
		dsn = fmt.Sprintf(
			"host=%s port=%s user=testuser password=testpass dbname=%s sslmode=disable",
			host, port.Port(), dbName,
		)

		t.Cleanup(func() {
			_, _, _ = pgContainer.Exec(
				context.Background(),
				[]string{"psql", "-U", "testuser", "-d", "testdb", "-c", "DROP DATABASE IF EXISTS " + dbName},
			)
		})
	default:
		t.Fatalf("unsupported driver: %s", driver)
	}

	store, err := New(context.Background(), driver, dsn, getTestConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func createUser(t *testing.T, s *Store, email string) *models.UserProfile {
	t.Helper()
	user := &models.UserProfile{Email: email}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func createAccess(t *testing.T, s *Store, user *models.UserProfile, key string) *models.Access {
	t.Helper()
	access := &models.Access{
		Key:         key,
		PlainSecret: "secret123456",
		UserID:      user.ID,
		RedirectURI: "https://client.example.com/cb",
		AppName:     "Test App",
	}
	require.NoError(t, s.CreateAccess(context.Background(), access))
	return access
}

// testBasicOperations runs every store scenario against one driver.
// Each subtest creates a fresh store instance for isolation
func testBasicOperations(t *testing.T, driver string, pgContainer *postgres.PostgresContainer) {
	ctx := context.Background()

	t.Run("UsersAndGroups", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		user := createUser(t, s, "dev@example.com")

		got, err := s.GetUserByEmail(ctx, "dev@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.False(t, got.InGroup(models.AdminsGroup))

		require.NoError(t, s.AddUserToGroup(ctx, user.ID, models.AdminsGroup))
		got, err = s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, got.InGroup(models.AdminsGroup))

		require.NoError(t, s.UpdateUserRegion(ctx, user.ID, "bra"))
		got, err = s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "bra", got.Region)

		_, err = s.GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrRecordNotFound)

		err = s.CreateUser(ctx, &models.UserProfile{Email: "dev@example.com"})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("AccessSecretsAreSealed", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		user := createUser(t, s, "dev@example.com")
		access := createAccess(t, s, user, "mkt:1:dev@example.com:0")

		var raw models.Access
		require.NoError(t, s.DB().First(&raw, access.ID).Error)
		assert.NotEqual(t, "secret123456", raw.Secret)

		got, err := s.GetAccessByKey(ctx, access.Key)
		require.NoError(t, err)
		assert.Equal(t, "secret123456", got.PlainSecret)

		_, err = s.GetAccessByKey(ctx, "mkt:missing")
		require.ErrorIs(t, err, ErrRecordNotFound)
		miss, err := s.box.Open(s.missSealed)
		require.NoError(t, err, "a miss opens the same kind of sealed value as a hit")
		assert.Len(t, miss, missSecretLength)

		exists, err := s.AccessKeyExists(ctx, access.Key)
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = s.AccessKeyExists(ctx, "mkt:missing")
		require.NoError(t, err)
		assert.False(t, exists)

		n, err := s.CountAccessByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		list, err := s.ListAccessByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "secret123456", list[0].PlainSecret)
	})

	t.Run("DeleteAccess", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		owner := createUser(t, s, "owner@example.com")
		other := createUser(t, s, "other@example.com")
		access := createAccess(t, s, owner, "mkt:owner:0")
		require.NoError(t, s.CreateToken(ctx, &models.Token{
			TokenType: models.TokenTypeAccess, CredsID: access.ID, Key: "accesskey1", Secret: "s", Timestamp: 1,
		}))

		require.ErrorIs(t, s.DeleteAccess(ctx, other.ID, access.ID), ErrRecordNotFound)
		require.NoError(t, s.DeleteAccess(ctx, owner.ID, access.ID))

		_, err := s.GetTokenByTypeAndKey(ctx, models.TokenTypeAccess, "accesskey1")
		require.ErrorIs(t, err, ErrRecordNotFound)

		createAccess(t, s, owner, "mkt:owner:1")
		createAccess(t, s, owner, "mkt:owner:2")
		deleted, err := s.DeleteAllAccessForUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("TokenExchange", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		user := createUser(t, s, "dev@example.com")
		access := createAccess(t, s, user, "clientkey01")

		verifier := "verifier01"
		request := &models.Token{
			TokenType: models.TokenTypeRequest,
			CredsID:   access.ID,
			Key:       "requestkey1",
			Secret:    "requestsec1",
			Timestamp: time.Now().Unix(),
			Verifier:  &verifier,
		}
		require.NoError(t, s.CreateToken(ctx, request))

		exists, err := s.TokenExistsForClient(ctx, models.TokenTypeRequest, "clientkey01", "requestkey1")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = s.TokenExistsForClient(ctx, models.TokenTypeRequest, "otherclient", "requestkey1")
		require.NoError(t, err)
		assert.False(t, exists)

		request.UserID = &user.ID
		require.NoError(t, s.UpdateToken(ctx, request))
		got, err := s.GetTokenForClient(ctx, models.TokenTypeRequest, "clientkey01", "requestkey1")
		require.NoError(t, err)
		require.NotNil(t, got.UserID)
		assert.Equal(t, user.ID, *got.UserID)

		accessTok := &models.Token{
			TokenType: models.TokenTypeAccess,
			CredsID:   access.ID,
			Key:       "accesskey01",
			Secret:    "accesssec01",
			Timestamp: time.Now().Unix(),
			UserID:    &user.ID,
		}
		require.NoError(t, s.ExchangeRequestToken(ctx, got, accessTok))

		exists, err = s.TokenExistsForClient(ctx, models.TokenTypeRequest, "clientkey01", "requestkey1")
		require.NoError(t, err)
		assert.False(t, exists, "request token is single use")

		again := &models.Token{
			TokenType: models.TokenTypeAccess, CredsID: access.ID, Key: "accesskey02", Secret: "x", Timestamp: 1,
		}
		require.ErrorIs(t, s.ExchangeRequestToken(ctx, got, again), ErrRecordNotFound)
		_, err = s.GetTokenByTypeAndKey(ctx, models.TokenTypeAccess, "accesskey02")
		require.ErrorIs(t, err, ErrRecordNotFound, "failed exchange must not leave an access token")
	})

	t.Run("NonceReplay", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		nonce := func() *models.Nonce {
			return &models.Nonce{Nonce: "abcdefgh", Timestamp: 1000, ClientKey: "clientkey01"}
		}

		created, err := s.InsertNonce(ctx, nonce())
		require.NoError(t, err)
		assert.True(t, created)

		created, err = s.InsertNonce(ctx, nonce())
		require.NoError(t, err)
		assert.False(t, created, "replayed tuple must be rejected")

		withToken := nonce()
		withToken.AccessToken = "accesskey01"
		created, err = s.InsertNonce(ctx, withToken)
		require.NoError(t, err)
		assert.True(t, created, "different token makes a different tuple")

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := s.InsertNonce(ctx, &models.Nonce{
					Nonce: "racenonce", Timestamp: 2000, ClientKey: "clientkey01",
				})
				if err == nil && ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())

		deleted, err := s.DeleteNoncesBefore(ctx, 1500)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("CancelPaymentAccount", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		user := createUser(t, s, "dev@example.com")

		shared := &models.PaymentAccount{
			UserID: user.ID, Name: "shared", SellerURI: "/seller/1/", URI: "/bango/package/1/",
			Provider: models.ProviderBango, Shared: true,
		}
		require.NoError(t, s.CreatePaymentAccount(ctx, shared))
		app := &models.Webapp{Name: "App", Status: models.StatusPublic}
		require.NoError(t, s.CreateWebapp(ctx, app))
		require.NoError(t, s.CreateAddonPaymentAccount(ctx, &models.AddonPaymentAccount{
			AddonID: app.ID, PaymentAccountID: shared.ID, AccountURI: shared.URI, ProductURI: "/p/1/",
		}))

		_, _, err := s.CancelPaymentAccount(ctx, shared, true)
		require.ErrorIs(t, err, ErrAccountInUse)
		got, err := s.GetPaymentAccount(ctx, shared.ID)
		require.NoError(t, err)
		assert.False(t, got.Inactive)

		solo := &models.PaymentAccount{
			UserID: user.ID, Name: "solo", SellerURI: "/seller/2/", URI: "/bango/package/2/",
			Provider: models.ProviderBango,
		}
		require.NoError(t, s.CreatePaymentAccount(ctx, solo))
		require.NoError(t, s.CreateAddonPaymentAccount(ctx, &models.AddonPaymentAccount{
			AddonID: app.ID, PaymentAccountID: solo.ID, AccountURI: solo.URI, ProductURI: "/p/2/",
		}))
		other := &models.Webapp{Name: "Other", Status: models.StatusPending}
		require.NoError(t, s.CreateWebapp(ctx, other))
		require.NoError(t, s.CreateAddonPaymentAccount(ctx, &models.AddonPaymentAccount{
			AddonID: other.ID, PaymentAccountID: solo.ID, AccountURI: solo.URI, ProductURI: "/p/3/",
		}))

		nulled, removed, err := s.CancelPaymentAccount(ctx, solo, true)
		require.NoError(t, err)
		assert.True(t, solo.Inactive)
		assert.Len(t, removed, 2)
		// app still has the shared account, so only the other app is nulled
		assert.Equal(t, []uint{other.ID}, nulled)

		gotApp, err := s.GetWebapp(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublic, gotApp.Status)
		gotOther, err := s.GetWebapp(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusNull, gotOther.Status)

		refs, err := s.ListAddonPaymentAccountsByURI(ctx, solo.URI)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("ListPaymentAccounts", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		user := createUser(t, s, "dev@example.com")
		for i := range 3 {
			require.NoError(t, s.CreatePaymentAccount(ctx, &models.PaymentAccount{
				UserID:    user.ID,
				Name:      fmt.Sprintf("account %d", i),
				SellerURI: fmt.Sprintf("/seller/%d/", i),
				URI:       fmt.Sprintf("/reference/%d/", i),
				Provider:  models.ProviderReference,
				Inactive:  i == 2,
			}))
		}

		accounts, page, err := s.ListPaymentAccounts(ctx, user.ID, NewPaginationParams(1, 1, ""))
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, int64(2), page.Total)
		assert.True(t, page.HasNext)

		accounts, _, err = s.ListPaymentAccounts(ctx, user.ID, NewPaginationParams(1, 10, "account 1"))
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "account 1", accounts[0].Name)
	})

	t.Run("HealthCheck", func(t *testing.T) {
		s := createFreshStore(t, driver, pgContainer)
		require.NoError(t, s.Health(ctx))
		assert.Same(t, s.DB(), s.ForRequest(false).read, "no replica reads the primary")
	})
}

func TestNewPaginationParams(t *testing.T) {
	p := NewPaginationParams(0, 500, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.PageSize)

	p = NewPaginationParams(3, 0, "x")
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 40, p.offset())
}
