package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SchemeRestOAuth        = "RestOAuth"
	SchemeRestSharedSecret = "RestSharedSecret"

	sharedSecretScheme = "mkt-shared-secret"
)

// OAuthAuthenticator resolves signed API requests to users.
// *services.OAuthService implements it.
type OAuthAuthenticator interface {
	AuthenticateResource(ctx context.Context, r *http.Request, signedMethod string) (*models.UserProfile, error)
	AuthenticateTwoLegged(ctx context.Context, r *http.Request, signedMethod string) (*models.UserProfile, error)
}

// authScheme returns the first word of an Authorization header and the rest.
func authScheme(header string) (string, string) {
	scheme, rest, _ := strings.Cut(strings.TrimSpace(header), " ")
	return scheme, strings.TrimSpace(rest)
}

// RestOAuth authenticates API requests signed with OAuth 1.0a. Requests
// carrying an oauth_token are checked as 3-legged, the rest as 2-legged.
// Failures leave the request anonymous.
func RestOAuth(auth OAuthAuthenticator, m metrics.Recorder, log *zap.Logger) gin.HandlerFunc {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	log = componentLogger(log)

	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		if !ac.IsAPI {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if scheme, _ := authScheme(header); strings.EqualFold(scheme, sharedSecretScheme) {
			log.Info("mkt-shared-secret found, ignoring")
			c.Next()
			return
		}

		rawQuery := c.Request.URL.RawQuery
		if header == "" && !strings.Contains(rawQuery, "oauth_token") {
			log.Debug("no authorization header")
			c.Next()
			return
		}

		var (
			user *models.UserProfile
			err  error
		)
		if strings.Contains(rawQuery, "oauth_token") || strings.Contains(header, "oauth_token") {
			log.Debug("trying 3 legged oauth")
			user, err = auth.AuthenticateResource(c.Request.Context(), c.Request, ac.SignedMethod)
		} else {
			log.Debug("trying 2 legged oauth")
			user, err = auth.AuthenticateTwoLegged(c.Request.Context(), c.Request, ac.SignedMethod)
		}

		m.RecordAuthAttempt(SchemeRestOAuth, err == nil)
		switch {
		case errors.Is(err, services.ErrDeniedRole):
			log.Info("attempt to use API with denied role")
		case err != nil:
			log.Warn("oauth authentication failed", zap.Error(err))
		default:
			ac.authenticate(c, user, SchemeRestOAuth)
			log.Info("successful oauth", zap.Uint("user_id", user.ID))
		}
		c.Next()
	}
}

// RequireAPIUser rejects API requests no scheme could authenticate.
func RequireAPIUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetAPIContext(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}
		c.Next()
	}
}

func componentLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log.With(zap.String("component", "api"))
}
