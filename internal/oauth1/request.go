// Package oauth1 verifies OAuth 1.0a (RFC 5849) signed requests for the
// token, authorize and protected resource flows, plus the two-legged
// server-to-server variant used by developer tooling.
package oauth1

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Protocol parameter names.
const (
	ParamConsumerKey     = "oauth_consumer_key"
	ParamToken           = "oauth_token"
	ParamSignature       = "oauth_signature"
	ParamSignatureMethod = "oauth_signature_method"
	ParamTimestamp       = "oauth_timestamp"
	ParamNonce           = "oauth_nonce"
	ParamVersion         = "oauth_version"
	ParamCallback        = "oauth_callback"
	ParamVerifier        = "oauth_verifier"
	paramRealm           = "realm"

	authorizationScheme = "OAuth"
	formContentType     = "application/x-www-form-urlencoded"

	// maxBodyBytes bounds the form body read for signature parameters.
	maxBodyBytes = 1 << 20
)

// Source records where a parameter was transmitted.
type Source int

const (
	SourceHeader Source = iota
	SourceQuery
	SourceBody
)

type Param struct {
	Key    string
	Value  string
	Source Source
}

// Stage tracks how far a request got through validation:
// UNSIGNED -> SIGNATURE_CHECKED -> one of the issued/authorized states.
type Stage int

const (
	StageUnsigned Stage = iota
	StageSignatureChecked
	StageRequestTokenIssued
	StageAccessTokenIssued
	StageResourceAuthorized
)

func (s Stage) String() string {
	switch s {
	case StageSignatureChecked:
		return "SIGNATURE_CHECKED"
	case StageRequestTokenIssued:
		return "REQUEST_TOKEN_ISSUED"
	case StageAccessTokenIssued:
		return "ACCESS_TOKEN_ISSUED"
	case StageResourceAuthorized:
		return "RESOURCE_AUTHORIZED"
	}
	return "UNSIGNED"
}

// Request is a parsed OAuth request. Method and URI are the values that go
// into the signature base string.
type Request struct {
	Method string
	URI    string
	Params []Param

	ClientKey       string
	Token           string
	Signature       string
	SignatureMethod string
	Timestamp       string
	Nonce           string
	Callback        string
	Verifier        string
	Realm           string

	// AttemptedKey is the client key as presented, kept for logging after
	// the server swaps in the dummy key.
	AttemptedKey string
	Stage        Stage
}

// HasOAuthParams reports whether any protocol parameter was sent.
func (r *Request) HasOAuthParams() bool {
	for _, p := range r.Params {
		if strings.HasPrefix(p.Key, "oauth_") {
			return true
		}
	}
	return false
}

// ParseRequest collects the OAuth parameters of r. baseURL is the public
// scheme://host[:port] of the service; the request path is appended to it
// to form the base string URI.
func ParseRequest(r *http.Request, baseURL string) (*Request, error) {
	req := &Request{
		Method: strings.ToUpper(r.Method),
	}

	uri, err := baseStringURI(baseURL, r.URL)
	if err != nil {
		return nil, err
	}
	req.URI = uri

	if h := r.Header.Get("Authorization"); h != "" {
		params, realm, err := parseAuthorizationHeader(h)
		if err != nil {
			return nil, err
		}
		req.Params = append(req.Params, params...)
		req.Realm = realm
	}

	query, err := parsePairs(r.URL.RawQuery, SourceQuery)
	if err != nil {
		return nil, err
	}
	req.Params = append(req.Params, query...)

	body, err := readFormBody(r)
	if err != nil {
		return nil, err
	}
	req.Params = append(req.Params, body...)

	if err := req.extractProtocolParams(); err != nil {
		return nil, err
	}
	return req, nil
}

// extractProtocolParams fills the named fields, rejecting duplicated
// protocol parameters and requests that spread them over more than one
// transport.
func (r *Request) extractProtocolParams() error {
	seen := map[string]bool{}
	var source *Source
	for _, p := range r.Params {
		if !strings.HasPrefix(p.Key, "oauth_") {
			continue
		}
		if seen[p.Key] {
			return malformed("duplicate parameter %s", p.Key)
		}
		seen[p.Key] = true
		if source == nil {
			s := p.Source
			source = &s
		} else if *source != p.Source {
			return malformed("oauth parameters must come from only one transport")
		}

		switch p.Key {
		case ParamConsumerKey:
			r.ClientKey = p.Value
		case ParamToken:
			r.Token = p.Value
		case ParamSignature:
			r.Signature = p.Value
		case ParamSignatureMethod:
			r.SignatureMethod = p.Value
		case ParamTimestamp:
			r.Timestamp = p.Value
		case ParamNonce:
			r.Nonce = p.Value
		case ParamCallback:
			r.Callback = p.Value
		case ParamVerifier:
			r.Verifier = p.Value
		case ParamVersion:
			if p.Value != "1.0" {
				return malformed("unsupported oauth_version %q", p.Value)
			}
		}
	}
	r.AttemptedKey = r.ClientKey
	return nil
}

// parseAuthorizationHeader parses `OAuth k="v", k2="v2"`. Values are
// percent-decoded. realm is returned separately and never signed.
func parseAuthorizationHeader(h string) ([]Param, string, error) {
	scheme, rest, _ := strings.Cut(strings.TrimSpace(h), " ")
	if !strings.EqualFold(scheme, authorizationScheme) {
		return nil, "", nil
	}

	var params []Param
	var realm string
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, "", malformed("bad authorization header pair %q", part)
		}
		v = strings.TrimSpace(v)
		if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
			return nil, "", malformed("unquoted authorization header value for %s", k)
		}
		key, err := url.PathUnescape(strings.TrimSpace(k))
		if err != nil {
			return nil, "", malformed("bad key encoding: %v", err)
		}
		value, err := url.PathUnescape(v[1 : len(v)-1])
		if err != nil {
			return nil, "", malformed("bad value encoding for %s: %v", key, err)
		}
		if key == paramRealm {
			realm = value
			continue
		}
		params = append(params, Param{Key: key, Value: value, Source: SourceHeader})
	}
	return params, realm, nil
}

// parsePairs decodes an application/x-www-form-urlencoded string keeping
// repeated keys and order.
func parsePairs(raw string, src Source) ([]Param, error) {
	var params []Param
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, malformed("bad parameter encoding: %v", err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, malformed("bad parameter encoding: %v", err)
		}
		params = append(params, Param{Key: key, Value: value, Source: src})
	}
	return params, nil
}

// readFormBody returns the body parameters of a form-encoded request and
// restores r.Body so later handlers can read it again.
func readFormBody(r *http.Request) ([]Param, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != formContentType {
		return nil, nil
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	return parsePairs(string(b), SourceBody)
}

// timestamp parses oauth_timestamp as seconds since the epoch.
func (r *Request) timestamp() (int64, bool) {
	if r.Timestamp == "" {
		return 0, false
	}
	for _, c := range r.Timestamp {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	ts, err := strconv.ParseInt(r.Timestamp, 10, 64)
	return ts, err == nil
}
