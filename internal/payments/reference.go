package payments

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reference is the reference provider implementation. Providers that follow
// the reference gateway API behave like it.
type Reference struct {
	base
}

func NewReference(gw solitude.Gateway, s *store.Store, domain string, log *zap.Logger) *Reference {
	return &Reference{base: newBase(ProviderReference, gw, s, domain, log)}
}

func (p *Reference) FullName() string { return "Reference Implementation" }

// sellerData is the form without the local-only account_name.
func sellerData(form AccountForm) solitude.Object {
	out := solitude.Object{}
	for k, v := range form {
		if k != "account_name" {
			out[k] = v
		}
	}
	return out
}

func (p *Reference) AccountCreate(
	ctx context.Context,
	user *models.UserProfile,
	form AccountForm,
) (*models.PaymentAccount, error) {
	name, err := accountName(form)
	if err != nil {
		return nil, err
	}
	seller, err := p.setupSeller(ctx, user)
	if err != nil {
		return nil, err
	}

	data := sellerData(form)
	data["seller"] = seller.ResourceURI
	data["status"] = "ACTIVE"
	data["uuid"] = uuid.NewString()

	p.log.Info("creating reference account", zap.Uint("user_id", user.ID))
	res, err := p.gateway.CreateReferenceSeller(ctx, data)
	if err != nil {
		return nil, err
	}
	return p.setupAccount(ctx, user, seller, res.URI(), res.String("id"), name)
}

func (p *Reference) AccountRetrieve(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	seller, err := p.gateway.GetReferenceSeller(ctx, acct.AccountID)
	if err != nil {
		return nil, err
	}
	data := map[string]any{"account_name": acct.Name}
	for k, val := range seller {
		data[k] = val
	}
	p.log.Info("retrieved reference account", zap.Uint("account_id", acct.ID))
	return data, nil
}

func (p *Reference) AccountUpdate(ctx context.Context, v ValidatedAccount, form AccountForm) error {
	acct, err := p.account(v)
	if err != nil {
		return err
	}
	if err := p.rename(ctx, acct, form); err != nil {
		return err
	}
	if _, err := p.gateway.PutReferenceSeller(ctx, acct.AccountID, sellerData(form)); err != nil {
		return err
	}
	p.log.Info("updated reference account", zap.Uint("account_id", acct.ID))
	return nil
}

// ProductCreate returns the generic product URI when a reference product
// already exists for it, and otherwise the URI of a new reference product.
func (p *Reference) ProductCreate(ctx context.Context, v ValidatedAccount, app *models.Webapp) (string, error) {
	acct, err := p.account(v)
	if err != nil {
		return "", err
	}
	secret, err := util.GenerateKey(productSecretBytes)
	if err != nil {
		return "", err
	}
	generic, err := p.GetOrCreateGenericProduct(ctx, app, secret)
	if err != nil {
		return "", err
	}

	if exists := generic.Object("seller_uuids").String("reference"); exists != "" {
		p.log.Info("reference product already exists", zap.String("uuid", exists))
		return generic.URI(), nil
	}

	productUUID := uuid.NewString()
	p.log.Info("creating reference product",
		zap.Uint("account_id", acct.ID),
		zap.Uint("app_id", app.ID),
		zap.String("uuid", productUUID))
	created, err := p.gateway.CreateReferenceProduct(ctx, solitude.Object{
		"seller_product":   generic.URI(),
		"seller_reference": acct.URI,
		"name":             app.Name,
		"uuid":             productUUID,
	})
	if err != nil {
		return "", err
	}
	return created.URI(), nil
}

func (p *Reference) TermsRetrieve(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	res, err := p.gateway.GetReferenceTerms(ctx, acct.AccountID)
	if err != nil {
		return nil, err
	}
	res["text"] = referenceTerms.Sanitize(res.Object("reference").String("text"))
	p.log.Info("retrieved reference terms", zap.Uint("account_id", acct.ID))
	return res, nil
}

// TermsUpdate stamps today's agreement date on the reference seller.
func (p *Reference) TermsUpdate(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	if err := p.agreeTOS(ctx, acct); err != nil {
		return nil, err
	}
	seller, err := p.gateway.GetReferenceSeller(ctx, acct.AccountID)
	if err != nil {
		return nil, err
	}
	data := seller.Object("reference")
	if data == nil {
		data = solitude.Object{}
	}
	data["agreement"] = p.now().Format("2006-01-02")
	data["seller"] = acct.SellerURI
	p.log.Info("updating reference terms", zap.Uint("account_id", acct.ID))
	return p.gateway.PutReferenceSeller(ctx, acct.AccountID, data)
}
