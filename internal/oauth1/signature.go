package oauth1

import (
	"crypto/hmac"
	"net/url"
	"sort"
	"strings"

	dghoauth1 "github.com/dghubble/oauth1"
)

// SignatureMethodHMACSHA1 is the only accepted oauth_signature_method.
const SignatureMethodHMACSHA1 = "HMAC-SHA1"

// baseStringURI builds the RFC 5849 3.4.1.2 base string URI from the
// configured public base URL and the escaped request path. Scheme and host
// are lowercased and default ports dropped.
func baseStringURI(baseURL string, u *url.URL) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", malformed("invalid base URL %q", baseURL)
	}
	scheme := strings.ToLower(base.Scheme)
	host := strings.ToLower(base.Host)
	if h, port, ok := strings.Cut(host, ":"); ok &&
		((scheme == "http" && port == "80") || (scheme == "https" && port == "443")) {
		host = h
	}
	return scheme + "://" + host + strings.TrimRight(base.EscapedPath(), "/") + u.EscapedPath(), nil
}

// normalizedParameters implements RFC 5849 3.4.1.3.2 over every parameter
// except oauth_signature.
func normalizedParameters(params []Param) string {
	pairs := make([][2]string, 0, len(params))
	for _, p := range params {
		if p.Key == ParamSignature {
			continue
		}
		pairs = append(pairs, [2]string{dghoauth1.PercentEncode(p.Key), dghoauth1.PercentEncode(p.Value)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p[0] + "=" + p[1]
	}
	return strings.Join(parts, "&")
}

// SignatureBaseString returns METHOD&enc(uri)&enc(params) for params.
func SignatureBaseString(method, uri string, params []Param) string {
	return strings.Join([]string{
		strings.ToUpper(method),
		dghoauth1.PercentEncode(uri),
		dghoauth1.PercentEncode(normalizedParameters(params)),
	}, "&")
}

// Sign computes the base64 HMAC-SHA1 signature of req's base string.
func Sign(req *Request, params []Param, clientSecret, tokenSecret string) (string, error) {
	signer := &dghoauth1.HMACSigner{ConsumerSecret: clientSecret}
	return signer.Sign(tokenSecret, SignatureBaseString(req.Method, req.URI, params))
}

// verifyHMACSHA1 recomputes the signature over params and compares it to
// the presented one in constant time.
func verifyHMACSHA1(req *Request, params []Param, clientSecret, tokenSecret string) bool {
	expected, err := Sign(req, params, clientSecret, tokenSecret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(req.Signature))
}
