package payments

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"go.uber.org/zap"
)

// Registry hands out the providers enabled by PAYMENT_PROVIDERS.
type Registry struct {
	allowed     []string
	defaultName string
	domain      string
	gateway     solitude.Gateway
	store       *store.Store
	metrics     metrics.Recorder
	log         *zap.Logger
}

func NewRegistry(
	cfg *config.Config,
	gw solitude.Gateway,
	s *store.Store,
	m metrics.Recorder,
	log *zap.Logger,
) *Registry {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		allowed:     cfg.PaymentProviders,
		defaultName: cfg.DefaultPaymentProvider,
		domain:      cfg.Domain,
		gateway:     gw,
		store:       s,
		metrics:     m,
		log:         log,
	}
}

func (r *Registry) build(id ProviderID) (Provider, error) {
	switch id {
	case ProviderBango:
		return NewBango(r.gateway, r.store, r.domain, r.log), nil
	case ProviderReference:
		return NewReference(r.gateway, r.store, r.domain, r.log), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id.Name())
	}
}

func (r *Registry) allow(p Provider) (Provider, error) {
	if !slices.Contains(r.allowed, p.Name()) {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotAllowed, p.Name())
	}
	return p, nil
}

// GetProvider returns the named provider, or DEFAULT_PAYMENT_PROVIDER when
// name is empty.
func (r *Registry) GetProvider(name string) (Provider, error) {
	if name == "" {
		name = r.defaultName
	}
	id, err := ParseProviderName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	p, err := r.build(id)
	if err != nil {
		return nil, err
	}
	return r.allow(p)
}

func (r *Registry) GetProviderByID(id ProviderID) (Provider, error) {
	p, err := r.build(id)
	if err != nil {
		return nil, err
	}
	return r.allow(p)
}

// GetProviders returns every allowed provider in configuration order.
func (r *Registry) GetProviders() []Provider {
	out := make([]Provider, 0, len(r.allowed))
	for _, name := range r.allowed {
		id, err := ParseProviderName(name)
		if err != nil {
			continue
		}
		if p, err := r.build(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// ForAccount returns the provider that owns acct together with the
// validated account.
func (r *Registry) ForAccount(acct *models.PaymentAccount) (Provider, ValidatedAccount, error) {
	p, err := r.GetProviderByID(ProviderID(acct.Provider))
	if err != nil {
		return nil, ValidatedAccount{}, err
	}
	v, err := Validate(p, acct)
	if err != nil {
		return nil, ValidatedAccount{}, err
	}
	return p, v, nil
}

// CancelAccount soft-deletes acct and drops the app references to it. With
// disableRefs, apps left without any payment account fall back to the null
// status. Shared accounts that apps still use cannot be cancelled.
func (r *Registry) CancelAccount(ctx context.Context, acct *models.PaymentAccount, disableRefs bool) error {
	nulled, removed, err := r.store.CancelPaymentAccount(ctx, acct, disableRefs)
	if errors.Is(err, store.ErrAccountInUse) {
		r.log.Error("cannot cancel a shared payment account that has apps using it",
			zap.Uint("account_id", acct.ID))
		return ErrCantCancel
	}
	if err != nil {
		return err
	}

	r.log.Info("soft-deleted payment account", zap.String("uri", acct.URI))
	for _, appID := range nulled {
		r.log.Info("changed app status to null because of payment account deletion",
			zap.Uint("app_id", appID))
	}
	for _, ref := range removed {
		r.log.Info("deleted app payment account because of payment account deletion",
			zap.Uint("app_id", ref.AddonID))
	}
	r.metrics.RecordAccountCancelled(disableRefs)
	return nil
}
