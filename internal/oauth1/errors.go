package oauth1

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRequest covers requests whose OAuth parameters cannot be
	// parsed: duplicates, mixed transports, bad headers, bad versions.
	ErrMalformedRequest = errors.New("malformed oauth request")

	// ErrUnsupportedSignatureMethod is returned for anything but HMAC-SHA1.
	ErrUnsupportedSignatureMethod = errors.New("unsupported signature method")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRequest, fmt.Sprintf(format, args...))
}

// TwoLeggedError is returned by ValidateTwoLegged. Exactly one of Method or
// ClientKey is set.
type TwoLeggedError struct {
	Method    string // rejected signature method
	ClientKey string // key whose signature did not verify
}

func (e *TwoLeggedError) Error() string {
	if e.Method != "" {
		return "unsupported signature method " + e.Method
	}
	return "Cannot find APIAccess token with that key: " + e.ClientKey
}
