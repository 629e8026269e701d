package oauth1

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimestampWindow is how far oauth_timestamp may drift from the
// server clock in either direction.
const DefaultTimestampWindow = 600 * time.Second

// Server runs the validation flows. It is built once at startup and
// shared; it holds no per-request state.
type Server struct {
	validator Validator
	now       func() time.Time
	window    time.Duration
	log       *zap.Logger
}

type Option func(*Server)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithTimestampWindow(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.window = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

func NewServer(v Validator, opts ...Option) *Server {
	s := &Server{
		validator: v,
		now:       time.Now,
		window:    DefaultTimestampWindow,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validator returns the validator the server was built with.
func (s *Server) Validator() Validator {
	return s.validator
}

// checkMandatory validates presence and format of the common protocol
// parameters. It never touches the store.
func (s *Server) checkMandatory(req *Request) bool {
	if req.ClientKey == "" || req.Signature == "" || req.SignatureMethod == "" ||
		req.Timestamp == "" || req.Nonce == "" {
		return s.reject(req, "missing mandatory parameter")
	}
	if req.SignatureMethod != SignatureMethodHMACSHA1 {
		return s.reject(req, "unsupported signature method")
	}
	ts, ok := req.timestamp()
	if !ok {
		return s.reject(req, "invalid timestamp")
	}
	if drift := s.now().Sub(time.Unix(ts, 0)); drift > s.window || drift < -s.window {
		return s.reject(req, "timestamp outside window")
	}
	if !CheckClientKey(req.ClientKey) {
		return s.reject(req, "invalid client key format")
	}
	if !CheckNonce(req.Nonce) {
		return s.reject(req, "invalid nonce format")
	}
	return true
}

func (s *Server) reject(req *Request, reason string) bool {
	s.log.Debug("oauth request rejected",
		zap.String("reason", reason),
		zap.String("attempted_key", req.AttemptedKey))
	return false
}

// resolveClient validates the client key and returns the key to use for
// the remaining lookups: the real one, or DummyClientKey.
func (s *Server) resolveClient(ctx context.Context, req *Request) bool {
	valid := s.validator.ValidateClientKey(ctx, req.ClientKey)
	if !valid {
		req.ClientKey = DummyClientKey
	}
	return valid
}

// ValidateRequestTokenRequest checks a temporary credentials request
// (RFC 5849 2.1): client signature only, oauth_callback required.
func (s *Server) ValidateRequestTokenRequest(ctx context.Context, req *Request) (bool, *Request) {
	if !s.checkMandatory(req) {
		return false, req
	}
	if req.Token != "" || !validCallback(req.Callback) {
		return s.reject(req, "invalid callback or unexpected token"), req
	}

	ts, _ := req.timestamp()
	if !s.validator.ValidateTimestampAndNonce(ctx, req.ClientKey, ts, req.Nonce, "", "") {
		return s.reject(req, "nonce replay"), req
	}

	validClient := s.resolveClient(ctx, req)
	secret := s.validator.GetClientSecret(ctx, req.ClientKey)
	validSignature := verifyHMACSHA1(req, req.Params, secret, "")

	return s.finish(req, validClient, validSignature)
}

// ValidateAccessTokenRequest checks a token credentials request
// (RFC 5849 2.3): request token, verifier and a signature made with the
// request token secret.
func (s *Server) ValidateAccessTokenRequest(ctx context.Context, req *Request) (bool, *Request) {
	if !s.checkMandatory(req) {
		return false, req
	}
	if !CheckRequestToken(req.Token) || !CheckVerifier(req.Verifier) {
		return s.reject(req, "invalid request token or verifier format"), req
	}

	ts, _ := req.timestamp()
	if !s.validator.ValidateTimestampAndNonce(ctx, req.ClientKey, ts, req.Nonce, req.Token, "") {
		return s.reject(req, "nonce replay"), req
	}

	validClient := s.resolveClient(ctx, req)
	validToken := s.validator.ValidateRequestToken(ctx, req.ClientKey, req.Token)
	if !validToken {
		req.Token = DummyRequestToken
	}
	validVerifier := s.validator.ValidateVerifier(ctx, req.ClientKey, req.Token, req.Verifier)
	tokenSecret := s.validator.GetRequestTokenSecret(ctx, req.ClientKey, req.Token)
	clientSecret := s.validator.GetClientSecret(ctx, req.ClientKey)
	validSignature := verifyHMACSHA1(req, req.Params, clientSecret, tokenSecret)

	return s.finish(req, validClient, validToken, validVerifier, validSignature)
}

// ValidateProtectedResourceRequest checks a request signed with an access
// token. On success req.Token is the resource owner's access token key.
func (s *Server) ValidateProtectedResourceRequest(ctx context.Context, req *Request) (bool, *Request) {
	if !s.checkMandatory(req) {
		return false, req
	}
	if !CheckAccessToken(req.Token) {
		return s.reject(req, "invalid access token format"), req
	}

	ts, _ := req.timestamp()
	if !s.validator.ValidateTimestampAndNonce(ctx, req.ClientKey, ts, req.Nonce, "", req.Token) {
		return s.reject(req, "nonce replay"), req
	}

	validClient := s.resolveClient(ctx, req)
	validToken := s.validator.ValidateAccessToken(ctx, req.ClientKey, req.Token)
	if !validToken {
		req.Token = DummyAccessToken
	}
	tokenSecret := s.validator.GetAccessTokenSecret(ctx, req.ClientKey, req.Token)
	clientSecret := s.validator.GetClientSecret(ctx, req.ClientKey)
	validSignature := verifyHMACSHA1(req, req.Params, clientSecret, tokenSecret)

	ok, _ := s.finish(req, validClient, validToken, validSignature)
	if ok {
		req.Stage = StageResourceAuthorized
	}
	return ok, req
}

// finish combines every check result without short-circuiting.
func (s *Server) finish(req *Request, checks ...bool) (bool, *Request) {
	valid := true
	for _, c := range checks {
		valid = valid && c
	}
	if !valid {
		return s.reject(req, "validation failed"), req
	}
	req.Stage = StageSignatureChecked
	return true, req
}

// validCallback accepts "oob" or an absolute URI.
func validCallback(cb string) bool {
	if cb == "oob" {
		return true
	}
	u, err := url.Parse(cb)
	return err == nil && u.Scheme != "" && u.Host != ""
}
