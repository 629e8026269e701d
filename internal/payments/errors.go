package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongProvider is returned when an account is used with a provider
	// other than the one that created it.
	ErrWrongProvider = errors.New("payment account belongs to another provider")

	// ErrProviderNotAllowed is returned for providers outside PAYMENT_PROVIDERS.
	ErrProviderNotAllowed = errors.New("payment provider is not allowed")

	// ErrUnknownProvider is returned for names and ids with no implementation.
	ErrUnknownProvider = errors.New("unknown payment provider")

	// ErrCantCancel is returned when cancelling a shared account that apps
	// still reference.
	ErrCantCancel = errors.New("you cannot cancel a shared payment account")

	// ErrAccountNameRequired is returned by AccountCreate without account_name.
	ErrAccountNameRequired = errors.New("account_name is required")
)

// WrongProviderError reports the account's provider and the provider it was
// handed to.
type WrongProviderError struct {
	AccountID uint
	Got       ProviderID
	Want      ProviderID
}

func (e *WrongProviderError) Error() string {
	return fmt.Sprintf("wrong account %d: provider %s != %s", e.AccountID, e.Got.Name(), e.Want.Name())
}

func (e *WrongProviderError) Unwrap() error {
	return ErrWrongProvider
}
