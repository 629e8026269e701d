package util

import (
	"crypto/subtle"
	"strings"
)

// CompareSecrets is the only comparison used for secrets and verifiers.
// It performs exactly one constant-time compare whether or not expected is
// known; a nil expected is compared against a zero string of the
// candidate's length and never matches.
func CompareSecrets(expected *string, candidate string) bool {
	known := expected != nil
	var want string
	if known {
		want = *expected
	} else {
		want = strings.Repeat("\x00", len(candidate))
	}
	eq := subtle.ConstantTimeCompare([]byte(want), []byte(candidate)) == 1
	return eq && known
}
