package payments

import (
	"context"
	"testing"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/mocks"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDomain = "marketplace-test"

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), config.DatabaseDriverSQLite, ":memory:",
		&config.Config{SecretKey: "payments-test"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeTestUser(t *testing.T, s *store.Store) *models.UserProfile {
	t.Helper()
	u := &models.UserProfile{Email: uuid.NewString()[:8] + "@example.com"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func makeTestApp(t *testing.T, s *store.Store, status int) *models.Webapp {
	t.Helper()
	app := &models.Webapp{Name: "Test App", AppSlug: "test-app", Status: status}
	require.NoError(t, s.CreateWebapp(context.Background(), app))
	return app
}

// makeTestAccount stores an account without touching the gateway.
func makeTestAccount(
	t *testing.T,
	s *store.Store,
	user *models.UserProfile,
	provider ProviderID,
	shared bool,
) *models.PaymentAccount {
	t.Helper()
	ctx := context.Background()
	id := uuid.NewString()
	seller := &models.SolitudeSeller{
		UserID:      user.ID,
		UUID:        id,
		ResourceURI: "/generic/seller/" + id + "/",
	}
	require.NoError(t, s.CreateSolitudeSeller(ctx, seller))

	acct := &models.PaymentAccount{
		UserID:           user.ID,
		Name:             "Account " + id[:4],
		SolitudeSellerID: seller.ID,
		SellerURI:        seller.ResourceURI,
		URI:              "/provider/" + provider.Name() + "/" + id + "/",
		AccountID:        "42",
		Provider:         int(provider),
		Shared:           shared,
	}
	require.NoError(t, s.CreatePaymentAccount(ctx, acct))
	return acct
}

func linkApp(t *testing.T, s *store.Store, app *models.Webapp, acct *models.PaymentAccount) {
	t.Helper()
	require.NoError(t, s.CreateAddonPaymentAccount(context.Background(), &models.AddonPaymentAccount{
		AddonID:          app.ID,
		PaymentAccountID: acct.ID,
		AccountURI:       acct.URI,
		ProductURI:       "/product/" + uuid.NewString() + "/",
	}))
}

func newGateway(t *testing.T) *mocks.MockGateway {
	t.Helper()
	return mocks.NewMockGateway(gomock.NewController(t))
}

func fixedNow(p *base) {
	p.now = func() time.Time { return time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) }
}
