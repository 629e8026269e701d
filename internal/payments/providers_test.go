package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProviderID_Names(t *testing.T) {
	for _, name := range []string{"paypal", "bango", "reference"} {
		id, err := ParseProviderName(name)
		require.NoError(t, err)
		assert.Equal(t, name, id.Name())
	}

	id, err := ParseProviderName(" Bango ")
	require.NoError(t, err)
	assert.Equal(t, ProviderBango, id)

	_, err = ParseProviderName("stripe")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestValidate_WrongProvider(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t) // no expectations: any gateway call fails the test
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderBango, false)

	ref := NewReference(gw, s, testDomain, nil)
	_, err := Validate(ref, acct)
	require.ErrorIs(t, err, ErrWrongProvider)

	var wrong *WrongProviderError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, ProviderBango, wrong.Got)
	assert.Equal(t, ProviderReference, wrong.Want)
	assert.Equal(t, acct.ID, wrong.AccountID)

	bango := NewBango(gw, s, testDomain, nil)
	v, err := Validate(bango, acct)
	require.NoError(t, err)
	assert.Same(t, acct, v.Account())

	ctx := context.Background()
	t.Run("validated for another provider", func(t *testing.T) {
		_, err := ref.AccountRetrieve(ctx, v)
		assert.ErrorIs(t, err, ErrWrongProvider)
		_, err = ref.TermsUpdate(ctx, v)
		assert.ErrorIs(t, err, ErrWrongProvider)
		_, err = ref.ProductCreate(ctx, v, makeTestApp(t, s, models.StatusPublic))
		assert.ErrorIs(t, err, ErrWrongProvider)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := bango.TermsRetrieve(ctx, ValidatedAccount{})
		assert.ErrorIs(t, err, ErrWrongProvider)
		assert.ErrorIs(t, bango.AccountUpdate(ctx, ValidatedAccount{}, AccountForm{}), ErrWrongProvider)
	})
}

func TestBango_AccountCreate(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().CreateGenericSeller(gomock.Any(), gomock.Any()).
			Return(solitude.Object{"resource_uri": "/generic/seller/1/"}, nil),
		gw.EXPECT().CreateBangoPackage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
				assert.Equal(t, "/generic/seller/1/", data["seller"])
				assert.Equal(t, "Acme", data["vendorName"])
				assert.Equal(t, "nobody@example.com", data["paypalEmailAddress"])
				assert.NotContains(t, data, "bankName")
				assert.NotContains(t, data, "account_name")
				return solitude.Object{"resource_uri": "/bango/package/9/", "package_id": float64(99)}, nil
			}),
		gw.EXPECT().CreateBangoBankDetails(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
				assert.Equal(t, "/bango/package/9/", data["seller_bango"])
				assert.Equal(t, "First Bank", data["bankName"])
				assert.NotContains(t, data, "vendorName")
				return solitude.Object{"resource_uri": "/bango/bank/3/"}, nil
			}),
	)

	p := NewBango(gw, s, testDomain, nil)
	acct, err := p.AccountCreate(ctx, user, AccountForm{
		"account_name": "My Bango",
		"vendorName":   "Acme",
		"bankName":     "First Bank",
	})
	require.NoError(t, err)

	stored, err := s.GetPaymentAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Bango", stored.Name)
	assert.Equal(t, "/bango/package/9/", stored.URI)
	assert.Equal(t, "/generic/seller/1/", stored.SellerURI)
	assert.Equal(t, "99", stored.AccountID)
	assert.Equal(t, int(ProviderBango), stored.Provider)
	require.NotNil(t, stored.SolitudeSeller)
	assert.Equal(t, user.ID, stored.SolitudeSeller.UserID)
}

func TestBango_AccountCreate_RequiresName(t *testing.T) {
	s := setupTestStore(t)
	p := NewBango(newGateway(t), s, testDomain, nil)

	_, err := p.AccountCreate(context.Background(), makeTestUser(t, s), AccountForm{"vendorName": "Acme"})
	assert.ErrorIs(t, err, ErrAccountNameRequired)
}

func TestBango_AccountCreate_BankFailure(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	ctx := context.Background()

	gw.EXPECT().CreateGenericSeller(gomock.Any(), gomock.Any()).
		Return(solitude.Object{"resource_uri": "/generic/seller/1/"}, nil)
	gw.EXPECT().CreateBangoPackage(gomock.Any(), gomock.Any()).
		Return(solitude.Object{"resource_uri": "/bango/package/9/", "package_id": "99"}, nil)
	gw.EXPECT().CreateBangoBankDetails(gomock.Any(), gomock.Any()).
		Return(nil, &solitude.APIError{Status: 400, Body: "bad iso"})

	p := NewBango(gw, s, testDomain, nil)
	_, err := p.AccountCreate(ctx, user, AccountForm{"account_name": "x"})

	var apiErr *solitude.APIError
	require.True(t, errors.As(err, &apiErr))

	accounts, _, err := s.ListPaymentAccounts(ctx, user.ID, store.NewPaginationParams(1, 20, ""))
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestBango_AccountRetrieveAndUpdate(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderBango, false)
	ctx := context.Background()

	p := NewBango(gw, s, testDomain, nil)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	gw.EXPECT().GetBangoPackage(gomock.Any(), acct.URI, true).Return(solitude.Object{
		"resource_uri": acct.URI,
		"full": map[string]any{
			"vendorName":  "Acme",
			"countryIso":  "BRA",
			"bangoSecret": "never returned",
		},
	}, nil)

	data, err := p.AccountRetrieve(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"account_name": acct.Name,
		"vendorName":   "Acme",
		"countryIso":   "BRA",
	}, data)

	gw.EXPECT().PatchByURI(gomock.Any(), acct.URI, solitude.Object{"vendorName": "Acme 2"}).
		Return(solitude.Object{}, nil)

	require.NoError(t, p.AccountUpdate(ctx, v, AccountForm{
		"account_name": "Renamed",
		"vendorName":   "Acme 2",
	}))

	stored, err := s.GetPaymentAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
}

func TestBango_ProductCreate(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderBango, false)
	app := makeTestApp(t, s, models.StatusPending)
	ctx := context.Background()

	p := NewBango(gw, s, testDomain, nil)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	var secret string
	gomock.InOrder(
		gw.EXPECT().GetGenericProduct(gomock.Any(), gomock.Any()).Return(nil, solitude.ErrNotFound),
		gw.EXPECT().CreateGenericSeller(gomock.Any(), gomock.Any()).
			Return(solitude.Object{"resource_uri": "/generic/seller/8/"}, nil),
		gw.EXPECT().CreateGenericProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
				assert.Equal(t, "/generic/seller/8/", data["seller"])
				assert.Equal(t, ExternalID(testDomain, app.ID), data["external_id"])
				assert.Equal(t, 1, data["access"])
				secret, _ = data["secret"].(string)
				assert.Len(t, secret, 2*productSecretBytes)
				return solitude.Object{"resource_uri": "/generic/product/5/"}, nil
			}),
		gw.EXPECT().GetBangoProduct(gomock.Any(), "5").Return(nil, solitude.ErrNotFound),
		gw.EXPECT().CreateBangoProviderProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
				assert.Equal(t, acct.URI, data["seller_bango"])
				assert.Equal(t, "/generic/product/5/", data["seller_product"])
				assert.Equal(t, app.Name, data["name"])
				assert.Equal(t, acct.AccountID, data["packageId"])
				assert.Equal(t, 1, data["categoryId"])
				assert.Equal(t, secret, data["secret"])
				return solitude.Object{"resource_uri": "/bango/product/11/"}, nil
			}),
	)

	uri, err := p.ProductCreate(ctx, v, app)
	require.NoError(t, err)
	assert.Equal(t, "/bango/product/11/", uri)

	stored, err := s.GetWebapp(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.SolitudePublicID)
	assert.Equal(t, *app.SolitudePublicID, *stored.SolitudePublicID)
}

func TestBango_ProductCreate_Existing(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderBango, false)
	app := makeTestApp(t, s, models.StatusPending)
	publicID := "public-1"
	app.SolitudePublicID = &publicID

	p := NewBango(gw, s, testDomain, nil)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	gw.EXPECT().GetGenericProduct(gomock.Any(), "public-1").
		Return(solitude.Object{"resource_uri": "/generic/product/5/"}, nil)
	gw.EXPECT().GetBangoProduct(gomock.Any(), "5").
		Return(solitude.Object{"resource_uri": "/bango/product/2/"}, nil)

	uri, err := p.ProductCreate(context.Background(), v, app)
	require.NoError(t, err)
	assert.Equal(t, "/bango/product/2/", uri)
}

func TestBango_Terms(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderBango, false)
	ctx := context.Background()

	p := NewBango(gw, s, testDomain, nil)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	gw.EXPECT().GetBangoPackage(gomock.Any(), acct.URI, false).
		Return(solitude.Object{"resource_uri": "/bango/package/9/"}, nil).Times(2)
	gw.EXPECT().GetBangoSBI(gomock.Any(), "/bango/package/9/").Return(solitude.Object{
		"text": `<h3>Terms</h3><script>alert(1)</script><p>Be <b>nice</b></p>`,
	}, nil)

	terms, err := p.TermsRetrieve(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "<h3>Terms</h3><p>Be nice</p>", terms["text"])

	gw.EXPECT().PostBangoSBI(gomock.Any(), "/bango/package/9/").
		Return(solitude.Object{"accepted": "2026-03-04"}, nil)

	res, err := p.TermsUpdate(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", res["accepted"])

	stored, err := s.GetPaymentAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.True(t, stored.AgreedTOS)
}

func TestBango_TermsUpdate_MissingPackage(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	acct := makeTestAccount(t, s, makeTestUser(t, s), ProviderBango, false)
	ctx := context.Background()

	p := NewBango(gw, s, testDomain, nil)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	gw.EXPECT().GetBangoPackage(gomock.Any(), acct.URI, false).Return(nil, solitude.ErrNotFound)

	_, err = p.TermsUpdate(ctx, v)
	require.ErrorIs(t, err, solitude.ErrNotFound)

	stored, err := s.GetPaymentAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.False(t, stored.AgreedTOS)
}

func TestReference_AccountCreate(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	ctx := context.Background()

	gw.EXPECT().CreateGenericSeller(gomock.Any(), gomock.Any()).
		Return(solitude.Object{"resource_uri": "/generic/seller/2/"}, nil)
	gw.EXPECT().CreateReferenceSeller(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
			assert.Equal(t, "/generic/seller/2/", data["seller"])
			assert.Equal(t, "ACTIVE", data["status"])
			assert.NotEmpty(t, data["uuid"])
			assert.Equal(t, "dev@example.com", data["email"])
			assert.NotContains(t, data, "account_name")
			return solitude.Object{"resource_uri": "/provider/reference/sellers/4/", "id": float64(4)}, nil
		})

	p := NewReference(gw, s, testDomain, nil)
	acct, err := p.AccountCreate(ctx, user, AccountForm{
		"account_name": "Ref",
		"email":        "dev@example.com",
		"name":         "Dev",
	})
	require.NoError(t, err)
	assert.Equal(t, "4", acct.AccountID)
	assert.Equal(t, "/provider/reference/sellers/4/", acct.URI)
	assert.Equal(t, int(ProviderReference), acct.Provider)
	assert.Equal(t, "Ref", acct.Name)
}

func TestReference_ProductCreate(t *testing.T) {
	s := setupTestStore(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderReference, false)
	ctx := context.Background()

	t.Run("existing reference product short-circuits", func(t *testing.T) {
		gw := newGateway(t)
		p := NewReference(gw, s, testDomain, nil)
		v, err := Validate(p, acct)
		require.NoError(t, err)

		gw.EXPECT().GetGenericProduct(gomock.Any(), gomock.Any()).Return(solitude.Object{
			"resource_uri": "/generic/product/5/",
			"seller_uuids": map[string]any{"reference": "ref-uuid", "bango": nil},
		}, nil)

		uri, err := p.ProductCreate(ctx, v, makeTestApp(t, s, models.StatusPublic))
		require.NoError(t, err)
		assert.Equal(t, "/generic/product/5/", uri)
	})

	t.Run("creates reference product", func(t *testing.T) {
		gw := newGateway(t)
		p := NewReference(gw, s, testDomain, nil)
		v, err := Validate(p, acct)
		require.NoError(t, err)
		app := makeTestApp(t, s, models.StatusPublic)

		gw.EXPECT().GetGenericProduct(gomock.Any(), gomock.Any()).Return(solitude.Object{
			"resource_uri": "/generic/product/6/",
			"seller_uuids": map[string]any{"reference": nil},
		}, nil)
		gw.EXPECT().CreateReferenceProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data solitude.Object) (solitude.Object, error) {
				assert.Equal(t, "/generic/product/6/", data["seller_product"])
				assert.Equal(t, acct.URI, data["seller_reference"])
				assert.Equal(t, app.Name, data["name"])
				assert.NotEmpty(t, data["uuid"])
				return solitude.Object{"resource_uri": "/provider/reference/products/3/"}, nil
			})

		uri, err := p.ProductCreate(ctx, v, app)
		require.NoError(t, err)
		assert.Equal(t, "/provider/reference/products/3/", uri)
	})
}

func TestReference_Terms(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)
	user := makeTestUser(t, s)
	acct := makeTestAccount(t, s, user, ProviderReference, false)
	ctx := context.Background()

	p := NewReference(gw, s, testDomain, nil)
	fixedNow(&p.base)
	v, err := Validate(p, acct)
	require.NoError(t, err)

	gw.EXPECT().GetReferenceTerms(gomock.Any(), acct.AccountID).Return(solitude.Object{
		"reference": map[string]any{
			"text": `<h1>Terms</h1><a href="https://example.com/tos" onclick="x()">read</a>`,
		},
	}, nil)

	terms, err := p.TermsRetrieve(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, `Terms<a href="https://example.com/tos">read</a>`, terms["text"])

	gw.EXPECT().GetReferenceSeller(gomock.Any(), acct.AccountID).Return(solitude.Object{
		"id":        float64(42),
		"reference": map[string]any{"name": "Dev", "email": "dev@example.com"},
	}, nil)
	gw.EXPECT().PutReferenceSeller(gomock.Any(), acct.AccountID, solitude.Object{
		"name":      "Dev",
		"email":     "dev@example.com",
		"agreement": "2026-03-04",
		"seller":    acct.SellerURI,
	}).Return(solitude.Object{"agreement": "2026-03-04"}, nil)

	res, err := p.TermsUpdate(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", res["agreement"])

	stored, err := s.GetPaymentAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.True(t, stored.AgreedTOS)
}

func TestPortalURL(t *testing.T) {
	s := setupTestStore(t)
	gw := newGateway(t)

	bango := NewBango(gw, s, testDomain, nil)
	assert.Equal(t, "/developers/app/my-app/payments/bango-portal", bango.PortalURL("my-app"))
	assert.Empty(t, bango.PortalURL(""))

	ref := NewReference(gw, s, testDomain, nil)
	assert.Empty(t, ref.PortalURL("my-app"))
}
