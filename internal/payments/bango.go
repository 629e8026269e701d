package payments

import (
	"context"
	"errors"
	"net/url"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"go.uber.org/zap"
)

var bangoPackageFields = []string{
	"adminEmailAddress", "supportEmailAddress", "financeEmailAddress",
	"paypalEmailAddress", "vendorName", "companyName", "address1",
	"address2", "addressCity", "addressState", "addressZipCode",
	"addressPhone", "countryIso", "currencyIso", "vatNumber",
}

var bangoBankFields = []string{
	"seller_bango", "bankAccountPayeeName", "bankAccountNumber",
	"bankAccountCode", "bankName", "bankAddress1", "bankAddress2",
	"bankAddressZipCode", "bankAddressIso",
}

// Bango provisions a Bango package per account.
type Bango struct {
	base
}

func NewBango(gw solitude.Gateway, s *store.Store, domain string, log *zap.Logger) *Bango {
	return &Bango{base: newBase(ProviderBango, gw, s, domain, log)}
}

func (p *Bango) FullName() string { return "Bango" }

func (p *Bango) AccountCreate(
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

	pkgValues := pick(form, bangoPackageFields)
	if _, ok := pkgValues["paypalEmailAddress"]; !ok {
		pkgValues["paypalEmailAddress"] = "nobody@example.com"
	}
	pkgValues["seller"] = seller.ResourceURI

	p.log.Info("creating bango package", zap.Uint("user_id", user.ID))
	pkg, err := p.gateway.CreateBangoPackage(ctx, pkgValues)
	if err != nil {
		return nil, err
	}

	bank := pick(form, bangoBankFields)
	bank["seller_bango"] = pkg.URI()
	p.log.Info("creating bango bank details", zap.Uint("user_id", user.ID))
	if _, err := p.gateway.CreateBangoBankDetails(ctx, bank); err != nil {
		p.log.Error("bango package left without bank details",
			zap.Uint("user_id", user.ID), zap.String("uri", pkg.URI()), zap.Error(err))
		return nil, err
	}

	return p.setupAccount(ctx, user, seller, pkg.URI(), pkg.String("package_id"), name)
}

// AccountRetrieve returns the account name plus the package fields the
// developer can edit.
func (p *Bango) AccountRetrieve(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	pkg, err := p.gateway.GetBangoPackage(ctx, acct.URI, true)
	if err != nil {
		return nil, err
	}
	data := map[string]any{"account_name": acct.Name}
	full := pkg.Object("full")
	for _, k := range bangoPackageFields {
		if val, ok := full[k]; ok {
			data[k] = val
		}
	}
	return data, nil
}

func (p *Bango) AccountUpdate(ctx context.Context, v ValidatedAccount, form AccountForm) error {
	acct, err := p.account(v)
	if err != nil {
		return err
	}
	if err := p.rename(ctx, acct, form); err != nil {
		return err
	}
	_, err = p.gateway.PatchByURI(ctx, acct.URI, pick(form, bangoPackageFields))
	return err
}

// ProductCreate returns the Bango product URI for app, creating the generic
// product and the Bango product as needed.
func (p *Bango) ProductCreate(ctx context.Context, v ValidatedAccount, app *models.Webapp) (string, error) {
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
	productURI := generic.URI()

	res, err := p.gateway.GetBangoProduct(ctx, solitude.PK(productURI))
	if errors.Is(err, solitude.ErrNotFound) {
		res, err = p.gateway.CreateBangoProviderProduct(ctx, solitude.Object{
			"seller_bango":   acct.URI,
			"seller_product": productURI,
			"name":           app.Name,
			"packageId":      acct.AccountID,
			"categoryId":     1,
			"secret":         secret,
		})
	}
	if err != nil {
		return "", err
	}
	return res.URI(), nil
}

// TermsUpdate records the developer's agreement locally and with Bango.
func (p *Bango) TermsUpdate(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	pkg, err := p.gateway.GetBangoPackage(ctx, acct.URI, false)
	if err != nil {
		return nil, err
	}
	if err := p.agreeTOS(ctx, acct); err != nil {
		return nil, err
	}
	return p.gateway.PostBangoSBI(ctx, pkg.URI())
}

func (p *Bango) TermsRetrieve(ctx context.Context, v ValidatedAccount) (map[string]any, error) {
	acct, err := p.account(v)
	if err != nil {
		return nil, err
	}
	pkg, err := p.gateway.GetBangoPackage(ctx, acct.URI, false)
	if err != nil {
		return nil, err
	}
	res, err := p.gateway.GetBangoSBI(ctx, pkg.URI())
	if err != nil {
		return nil, err
	}
	if text, ok := res["text"].(string); ok {
		res["text"] = bangoTerms.Sanitize(text)
	}
	return res, nil
}

// PortalURL links to the marketplace page that forwards to the Bango portal.
func (p *Bango) PortalURL(appSlug string) string {
	if appSlug == "" {
		return ""
	}
	return "/developers/app/" + url.PathEscape(appSlug) + "/payments/bango-portal"
}
