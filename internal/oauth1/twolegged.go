package oauth1

import (
	"context"
	"strings"
)

// ValidateTwoLegged verifies a request signed with only the client
// credentials: no resource owner token and no nonce ledger. It is a
// non-standard convenience for developer tools and tests. Only the
// Authorization header carries the protocol parameters.
//
// On success the validated client key is returned; every failure is a
// *TwoLeggedError.
func ValidateTwoLegged(ctx context.Context, v Validator, req *Request) (string, error) {
	var signed []Param
	for _, p := range req.Params {
		if strings.HasPrefix(p.Key, "oauth_") && p.Source != SourceHeader {
			return "", &TwoLeggedError{ClientKey: req.ClientKey}
		}
		signed = append(signed, p)
	}

	if !strings.EqualFold(req.SignatureMethod, SignatureMethodHMACSHA1) {
		method := req.SignatureMethod
		if method == "" {
			method = "(none)"
		}
		return "", &TwoLeggedError{Method: method}
	}

	key := req.ClientKey
	validClient := CheckClientKey(key) && v.ValidateClientKey(ctx, key)
	if !validClient {
		key = DummyClientKey
	}
	secret := v.GetClientSecret(ctx, key)
	if !verifyHMACSHA1(req, signed, secret, "") || !validClient {
		return "", &TwoLeggedError{ClientKey: req.ClientKey}
	}
	req.Stage = StageSignatureChecked
	return req.ClientKey, nil
}
