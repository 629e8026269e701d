package payments

import (
	"context"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/models"
)

// ProviderID is the persisted provider identifier of a PaymentAccount.
type ProviderID int

const (
	// ProviderPayPal is reserved; no implementation exists.
	ProviderPayPal    ProviderID = models.ProviderPayPal
	ProviderBango     ProviderID = models.ProviderBango
	ProviderReference ProviderID = models.ProviderReference
)

// Name returns the configuration name of the provider.
func (id ProviderID) Name() string {
	switch id {
	case ProviderPayPal:
		return "paypal"
	case ProviderBango:
		return "bango"
	case ProviderReference:
		return "reference"
	}
	return "unknown"
}

// ParseProviderName maps a configuration name to its ProviderID.
func ParseProviderName(name string) (ProviderID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "paypal":
		return ProviderPayPal, nil
	case "bango":
		return ProviderBango, nil
	case "reference":
		return ProviderReference, nil
	}
	return 0, ErrUnknownProvider
}

// AccountForm is the developer-submitted account data. account_name names
// the local account; the remaining fields go to the gateway.
type AccountForm map[string]string

// Provider is implemented by every payment provider.
type Provider interface {
	ID() ProviderID
	Name() string
	FullName() string

	AccountCreate(ctx context.Context, user *models.UserProfile, form AccountForm) (*models.PaymentAccount, error)
	AccountRetrieve(ctx context.Context, acct ValidatedAccount) (map[string]any, error)
	AccountUpdate(ctx context.Context, acct ValidatedAccount, form AccountForm) error
	ProductCreate(ctx context.Context, acct ValidatedAccount, app *models.Webapp) (string, error)
	TermsRetrieve(ctx context.Context, acct ValidatedAccount) (map[string]any, error)
	TermsUpdate(ctx context.Context, acct ValidatedAccount) (map[string]any, error)
	PortalURL(appSlug string) string
}

// ValidatedAccount is a PaymentAccount that has been checked against the
// provider it will be used with. The zero value is rejected by every
// provider method.
type ValidatedAccount struct {
	account  *models.PaymentAccount
	provider ProviderID
}

// Validate checks that acct belongs to p.
func Validate(p Provider, acct *models.PaymentAccount) (ValidatedAccount, error) {
	if acct == nil {
		return ValidatedAccount{}, ErrWrongProvider
	}
	if ProviderID(acct.Provider) != p.ID() {
		return ValidatedAccount{}, &WrongProviderError{
			AccountID: acct.ID,
			Got:       ProviderID(acct.Provider),
			Want:      p.ID(),
		}
	}
	return ValidatedAccount{account: acct, provider: p.ID()}, nil
}

// Account returns the underlying account.
func (v ValidatedAccount) Account() *models.PaymentAccount {
	return v.account
}
