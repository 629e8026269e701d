package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"go.uber.org/zap"
)

var (
	// ErrInvalidOAuthRequest is the single failure callers see for any
	// rejected OAuth request; the reason is only logged.
	ErrInvalidOAuthRequest  = errors.New("invalid oauth request")
	ErrTwoLeggedDisabled    = errors.New("two-legged oauth is disabled")
	ErrRequestTokenNotFound = errors.New("request token not found")
	ErrDeniedRole           = errors.New("user belongs to a group denied API access")
)

const (
	flowRequestToken = "request_token"
	flowAccessToken  = "access_token"
	flowResource     = "resource"
	flowTwoLegged    = "two_legged"
)

// OAuthService runs the OAuth 1.0a endpoints and resolves signed API
// requests to users.
type OAuthService struct {
	store     *store.Store
	server    *oauth1.Server
	siteURL   string
	twoLegged bool
	metrics   metrics.Recorder
	log       *zap.Logger
	now       func() time.Time
}

func NewOAuthService(
	s *store.Store,
	server *oauth1.Server,
	cfg *config.Config,
	m metrics.Recorder,
	log *zap.Logger,
) *OAuthService {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OAuthService{
		store:     s,
		server:    server,
		siteURL:   cfg.SiteURL,
		twoLegged: cfg.OAuthTwoLeggedEnabled,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

// parse builds the oauth1 request. signedMethod overrides the HTTP method
// when the client used X-HTTP-Method-Override.
func (s *OAuthService) parse(r *http.Request, signedMethod string) (*oauth1.Request, error) {
	req, err := oauth1.ParseRequest(r, s.siteURL)
	if err != nil {
		return nil, err
	}
	if signedMethod != "" {
		req.Method = signedMethod
	}
	return req, nil
}

// validate runs one server flow and records the outcome.
func (s *OAuthService) validate(
	ctx context.Context,
	r *http.Request,
	signedMethod, flow string,
	check func(context.Context, *oauth1.Request) (bool, *oauth1.Request),
) (*oauth1.Request, error) {
	start := time.Now()
	req, err := s.parse(r, signedMethod)
	if err != nil {
		s.metrics.RecordOAuthValidation(flow, false, time.Since(start))
		s.log.Warn("malformed oauth request", zap.String("flow", flow), zap.Error(err))
		return nil, ErrInvalidOAuthRequest
	}
	ok, req := check(ctx, req)
	s.metrics.RecordOAuthValidation(flow, ok, time.Since(start))
	if !ok {
		s.log.Warn("invalid oauth request",
			zap.String("flow", flow),
			zap.String("attempted_key", req.AttemptedKey))
		return req, ErrInvalidOAuthRequest
	}
	return req, nil
}

func (s *OAuthService) newToken(typ models.TokenType, credsID uint, userID *uint) (*models.Token, error) {
	key, err := util.RandomString(oauth1.SecretLength)
	if err != nil {
		return nil, err
	}
	secret, err := util.RandomString(oauth1.SecretLength)
	if err != nil {
		return nil, err
	}
	t := &models.Token{
		TokenType: typ,
		CredsID:   credsID,
		Key:       key,
		Secret:    secret,
		Timestamp: s.now().Unix(),
		UserID:    userID,
	}
	if typ == models.TokenTypeRequest {
		verifier, err := util.RandomString(oauth1.SecretLength)
		if err != nil {
			return nil, err
		}
		t.Verifier = &verifier
	}
	return t, nil
}

// IssueRequestToken validates a temporary credentials request and mints an
// anonymous request token for the calling consumer.
func (s *OAuthService) IssueRequestToken(ctx context.Context, r *http.Request) (*models.Token, error) {
	req, err := s.validate(ctx, r, "", flowRequestToken, s.server.ValidateRequestTokenRequest)
	if err != nil {
		return nil, err
	}

	access, err := s.store.GetAccessByKey(ctx, req.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load consumer: %w", err)
	}
	token, err := s.newToken(models.TokenTypeRequest, access.ID, nil)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateToken(ctx, token); err != nil {
		return nil, err
	}
	req.Stage = oauth1.StageRequestTokenIssued
	s.metrics.RecordTokenIssued(models.TokenTypeRequest.String())
	s.log.Info("request token issued", zap.String("client_key", req.ClientKey), zap.Stringer("stage", req.Stage))
	return token, nil
}

// IssueAccessToken exchanges an authorized, verified request token for an
// access token bound to the same consumer and user.
func (s *OAuthService) IssueAccessToken(ctx context.Context, r *http.Request) (*models.Token, error) {
	req, err := s.validate(ctx, r, "", flowAccessToken, s.server.ValidateAccessTokenRequest)
	if err != nil {
		return nil, err
	}

	request, err := s.store.GetTokenForClient(ctx, models.TokenTypeRequest, req.ClientKey, req.Token)
	if err != nil {
		return nil, ErrInvalidOAuthRequest
	}
	if !request.IsAuthorized() {
		s.log.Warn("access token requested for unauthorized request token",
			zap.String("attempted_key", req.AttemptedKey))
		return nil, ErrInvalidOAuthRequest
	}

	access, err := s.newToken(models.TokenTypeAccess, request.CredsID, request.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.store.ExchangeRequestToken(ctx, request, access); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrInvalidOAuthRequest
		}
		return nil, err
	}
	req.Stage = oauth1.StageAccessTokenIssued
	s.metrics.RecordTokenIssued(models.TokenTypeAccess.String())
	s.log.Info("access token issued", zap.String("client_key", req.ClientKey), zap.Stringer("stage", req.Stage))
	return access, nil
}

// GetPendingRequestToken loads a request token and its consumer for the
// consent page.
func (s *OAuthService) GetPendingRequestToken(ctx context.Context, key string) (*models.Token, error) {
	if key == "" {
		return nil, ErrRequestTokenNotFound
	}
	token, err := s.store.GetTokenByTypeAndKey(ctx, models.TokenTypeRequest, key)
	if err != nil {
		return nil, notFound(err, ErrRequestTokenNotFound)
	}
	return token, nil
}

// AuthorizeRequestToken binds user to the request token and returns the
// consumer's redirect URI carrying the token and verifier.
func (s *OAuthService) AuthorizeRequestToken(
	ctx context.Context,
	key string,
	user *models.UserProfile,
) (string, error) {
	token, err := s.GetPendingRequestToken(ctx, key)
	if err != nil {
		return "", err
	}
	token.UserID = &user.ID
	if err := s.store.UpdateToken(ctx, token); err != nil {
		return "", err
	}
	s.metrics.RecordTokenAuthorization("grant")

	verifier := ""
	if token.Verifier != nil {
		verifier = *token.Verifier
	}
	return util.AppendQuery(token.Creds.RedirectURI, url.Values{
		oauth1.ParamToken:    {token.Key},
		oauth1.ParamVerifier: {verifier},
	})
}

// DenyRequestToken discards the request token.
func (s *OAuthService) DenyRequestToken(ctx context.Context, key string) error {
	token, err := s.GetPendingRequestToken(ctx, key)
	if err != nil {
		return err
	}
	if err := s.store.DeleteToken(ctx, token.ID); err != nil {
		return notFound(err, ErrRequestTokenNotFound)
	}
	s.metrics.RecordTokenAuthorization("deny")
	return nil
}

// AuthenticateResource validates a 3-legged signed API request and returns
// the user that granted the access token.
func (s *OAuthService) AuthenticateResource(
	ctx context.Context,
	r *http.Request,
	signedMethod string,
) (*models.UserProfile, error) {
	req, err := s.validate(ctx, r, signedMethod, flowResource, s.server.ValidateProtectedResourceRequest)
	if err != nil {
		return nil, err
	}

	token, err := s.store.GetTokenByTypeAndKey(ctx, models.TokenTypeAccess, req.Token)
	if err != nil {
		return nil, fmt.Errorf("load access token: %w", err)
	}
	if token.UserID == nil {
		return nil, ErrInvalidOAuthRequest
	}
	return s.apiUser(ctx, *token.UserID)
}

// AuthenticateTwoLegged validates a request signed with consumer
// credentials only and returns the consumer's owner.
func (s *OAuthService) AuthenticateTwoLegged(
	ctx context.Context,
	r *http.Request,
	signedMethod string,
) (*models.UserProfile, error) {
	if !s.twoLegged {
		return nil, ErrTwoLeggedDisabled
	}
	start := time.Now()
	req, err := s.parse(r, signedMethod)
	if err != nil {
		s.metrics.RecordOAuthValidation(flowTwoLegged, false, time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrInvalidOAuthRequest, err)
	}
	clientKey, err := oauth1.ValidateTwoLegged(ctx, s.server.Validator(), req)
	s.metrics.RecordOAuthValidation(flowTwoLegged, err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	access, err := s.store.GetAccessByKey(ctx, clientKey)
	if err != nil {
		return nil, fmt.Errorf("load consumer: %w", err)
	}
	return s.apiUser(ctx, access.UserID)
}

// apiUser loads the user and refuses members of denied groups.
func (s *OAuthService) apiUser(ctx context.Context, id uint) (*models.UserProfile, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if user.InGroup(models.AdminsGroup) {
		return nil, ErrDeniedRole
	}
	return user, nil
}
