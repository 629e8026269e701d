package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// accessPurchase is the gateway access level of a generic product.
const accessPurchase = 1

// productSecretBytes is the size of the random product secret.
const productSecretBytes = 48

// base carries what every provider shares: the gateway, the store and the
// generic seller/product bootstrap.
type base struct {
	id      ProviderID
	gateway solitude.Gateway
	store   *store.Store
	domain  string
	log     *zap.Logger
	now     func() time.Time
}

func newBase(id ProviderID, gw solitude.Gateway, s *store.Store, domain string, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{
		id:      id,
		gateway: gw,
		store:   s,
		domain:  domain,
		log:     log.With(zap.String("component", "providers"), zap.String("provider", id.Name())),
		now:     time.Now,
	}
}

func (b *base) ID() ProviderID { return b.id }

func (b *base) Name() string { return b.id.Name() }

// PortalURL is empty for providers without a self-service portal.
func (b *base) PortalURL(string) string { return "" }

// account unwraps v, refusing values validated for another provider.
func (b *base) account(v ValidatedAccount) (*models.PaymentAccount, error) {
	if v.account == nil {
		return nil, &WrongProviderError{Got: v.provider, Want: b.id}
	}
	if v.provider != b.id || ProviderID(v.account.Provider) != b.id {
		return nil, &WrongProviderError{
			AccountID: v.account.ID,
			Got:       ProviderID(v.account.Provider),
			Want:      b.id,
		}
	}
	return v.account, nil
}

// GetOrCreatePublicID returns the app's gateway public id, minting and
// saving one on first use.
func (b *base) GetOrCreatePublicID(ctx context.Context, app *models.Webapp) (string, error) {
	if app.SolitudePublicID != nil && *app.SolitudePublicID != "" {
		return *app.SolitudePublicID, nil
	}
	publicID := uuid.NewString()
	if err := b.store.SetWebappPublicID(ctx, app.ID, publicID); err != nil {
		return "", fmt.Errorf("failed to save public id: %w", err)
	}
	app.SolitudePublicID = &publicID
	return publicID, nil
}

// GetOrCreateGenericProduct looks the app's generic product up by public id
// and creates a generic seller and product when there is none. An empty
// secret is replaced by a random one.
func (b *base) GetOrCreateGenericProduct(
	ctx context.Context,
	app *models.Webapp,
	secret string,
) (solitude.Object, error) {
	publicID, err := b.GetOrCreatePublicID(ctx, app)
	if err != nil {
		return nil, err
	}

	b.log.Info("checking generic product exists", zap.String("public_id", publicID))
	generic, err := b.gateway.GetGenericProduct(ctx, publicID)
	if err == nil {
		return generic, nil
	}
	if !errors.Is(err, solitude.ErrNotFound) {
		return nil, err
	}

	sellerUUID := uuid.NewString()
	seller, err := b.gateway.CreateGenericSeller(ctx, sellerUUID)
	if err != nil {
		return nil, err
	}
	b.log.Info("created generic seller",
		zap.String("seller_uuid", sellerUUID), zap.Uint("app_id", app.ID))

	if secret == "" {
		if secret, err = util.GenerateKey(productSecretBytes); err != nil {
			return nil, err
		}
	}
	generic, err = b.gateway.CreateGenericProduct(ctx, solitude.Object{
		"public_id":   publicID,
		"external_id": ExternalID(b.domain, app.ID),
		"seller":      seller.URI(),
		"secret":      secret,
		"access":      accessPurchase,
	})
	if err != nil {
		b.log.Error("generic seller left without a product",
			zap.String("seller_uri", seller.URI()), zap.Uint("app_id", app.ID), zap.Error(err))
		return nil, err
	}
	b.log.Info("created generic product",
		zap.String("public_id", publicID), zap.Uint("app_id", app.ID))
	return generic, nil
}

// setupSeller creates the developer's generic seller and its local record.
func (b *base) setupSeller(ctx context.Context, user *models.UserProfile) (*models.SolitudeSeller, error) {
	sellerUUID := uuid.NewString()
	res, err := b.gateway.CreateGenericSeller(ctx, sellerUUID)
	if err != nil {
		return nil, err
	}
	seller := &models.SolitudeSeller{UserID: user.ID, UUID: sellerUUID, ResourceURI: res.URI()}
	if err := b.store.CreateSolitudeSeller(ctx, seller); err != nil {
		b.log.Error("orphaned gateway seller",
			zap.Uint("user_id", user.ID), zap.String("seller_uri", res.URI()), zap.Error(err))
		return nil, err
	}
	b.log.Info("created seller", zap.Uint("user_id", user.ID), zap.String("seller_uuid", sellerUUID))
	return seller, nil
}

// setupAccount persists the local account for a provisioned gateway record.
func (b *base) setupAccount(
	ctx context.Context,
	user *models.UserProfile,
	seller *models.SolitudeSeller,
	uri, accountID, name string,
) (*models.PaymentAccount, error) {
	acct := &models.PaymentAccount{
		UserID:           user.ID,
		Name:             name,
		SolitudeSellerID: seller.ID,
		SellerURI:        seller.ResourceURI,
		URI:              uri,
		AccountID:        accountID,
		Provider:         int(b.id),
	}
	if err := b.store.CreatePaymentAccount(ctx, acct); err != nil {
		b.log.Error("orphaned gateway account",
			zap.Uint("user_id", user.ID),
			zap.String("seller_uri", seller.ResourceURI),
			zap.String("uri", uri),
			zap.Error(err))
		return nil, err
	}
	b.log.Info("created payment account", zap.Uint("user_id", user.ID), zap.String("uri", uri))
	return acct, nil
}

// rename stores a new local account name when the form carries one.
func (b *base) rename(ctx context.Context, acct *models.PaymentAccount, form AccountForm) error {
	name, ok := form["account_name"]
	if !ok {
		return nil
	}
	acct.Name = name
	return b.store.UpdatePaymentAccount(ctx, acct)
}

func (b *base) agreeTOS(ctx context.Context, acct *models.PaymentAccount) error {
	acct.AgreedTOS = true
	return b.store.UpdatePaymentAccount(ctx, acct)
}

// ExternalID is the product id the marketplace shares with the gateway.
func ExternalID(domain string, appID uint) string {
	return fmt.Sprintf("%s:%d", domain, appID)
}

// pick copies the allowed form fields into a gateway payload.
func pick(form AccountForm, allowed []string) solitude.Object {
	out := solitude.Object{}
	for _, k := range allowed {
		if v, ok := form[k]; ok {
			out[k] = v
		}
	}
	return out
}

func accountName(form AccountForm) (string, error) {
	name := form["account_name"]
	if name == "" {
		return "", ErrAccountNameRequired
	}
	return name, nil
}
