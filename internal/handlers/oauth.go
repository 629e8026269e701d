package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/templates"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const formContentType = "application/x-www-form-urlencoded"

// OAuthHandler serves the OAuth 1.0a endpoints: temporary credentials,
// the consent page and the token exchange.
type OAuthHandler struct {
	oauth *services.OAuthService
	log   *zap.Logger
}

func NewOAuthHandler(oauth *services.OAuthService, log *zap.Logger) *OAuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OAuthHandler{oauth: oauth, log: log.With(zap.String("component", "oauth"))}
}

// RequestToken handles POST /oauth/token/.
func (h *OAuthHandler) RequestToken(c *gin.Context) {
	token, err := h.oauth.IssueRequestToken(c.Request.Context(), c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Data(http.StatusOK, formContentType, []byte(url.Values{
		oauth1.ParamToken:          {token.Key},
		"oauth_token_secret":       {token.Secret},
		"oauth_callback_confirmed": {"true"},
	}.Encode()))
}

// AccessToken handles POST /oauth/register/, exchanging an authorized
// request token for an access token.
func (h *OAuthHandler) AccessToken(c *gin.Context) {
	token, err := h.oauth.IssueAccessToken(c.Request.Context(), c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Data(http.StatusOK, formContentType, []byte(url.Values{
		oauth1.ParamToken:    {token.Key},
		"oauth_token_secret": {token.Secret},
	}.Encode()))
}

// AuthorizePage handles GET /oauth/authorize/.
func (h *OAuthHandler) AuthorizePage(c *gin.Context) {
	key := c.Query(oauth1.ParamToken)
	token, err := h.oauth.GetPendingRequestToken(c.Request.Context(), key)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	user := middleware.SessionUser(c)
	c.HTML(http.StatusOK, "authorize.html", templates.AuthorizePageProps{
		BaseProps:  templates.BaseProps{CSRFToken: middleware.CSRFToken(c)},
		AppName:    token.Creds.AppName,
		OAuthToken: token.Key,
		UserEmail:  user.Email,
	})
}

// Authorize handles POST /oauth/authorize/. "grant" binds the token to the
// logged-in user and sends the browser back to the consumer; "deny"
// discards the token.
func (h *OAuthHandler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.PostForm(oauth1.ParamToken)
	user := middleware.SessionUser(c)

	switch {
	case c.PostForm("grant") != "":
		redirect, err := h.oauth.AuthorizeRequestToken(ctx, key, user)
		if err != nil {
			h.authorizeFailed(c, err)
			return
		}
		h.log.Info("request token authorized", zap.Uint("user_id", user.ID))
		c.Redirect(http.StatusFound, redirect)
	case c.PostForm("deny") != "":
		if err := h.oauth.DenyRequestToken(ctx, key); err != nil {
			h.authorizeFailed(c, err)
			return
		}
		h.log.Info("request token denied", zap.Uint("user_id", user.ID))
		c.Status(http.StatusOK)
	default:
		c.Status(http.StatusUnauthorized)
	}
}

func (h *OAuthHandler) authorizeFailed(c *gin.Context, err error) {
	if !errors.Is(err, services.ErrRequestTokenNotFound) {
		h.log.Error("authorize request token", zap.Error(err))
	}
	c.Status(http.StatusUnauthorized)
}
