package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserByEmail looks users up for the shared-secret scheme.
// *services.UserService implements it.
type UserByEmail interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

// SharedSecretToken builds the "email,hmac,unique_id" token trusted
// first-party frontends send as "Authorization: mkt-shared-secret <token>"
// or ?_user=<token>.
func SharedSecretToken(email, uniqueID, secretKey string) string {
	return email + "," + sharedSecretMAC(email, uniqueID, secretKey) + "," + uniqueID
}

func sharedSecretMAC(email, uniqueID, secretKey string) string {
	consumerID := util.SHA1Hex(email + secretKey)
	mac := hmac.New(sha512.New, []byte(uniqueID+secretKey))
	mac.Write([]byte(consumerID))
	return hex.EncodeToString(mac.Sum(nil))
}

// RestSharedSecret authenticates API requests carrying a shared-secret
// token. Bad or unknown tokens leave the request anonymous.
func RestSharedSecret(users UserByEmail, secretKey string, m metrics.Recorder, log *zap.Logger) gin.HandlerFunc {
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

		var token string
		if scheme, rest := authScheme(c.GetHeader("Authorization")); strings.EqualFold(scheme, sharedSecretScheme) {
			token = rest
		} else {
			token = c.Query("_user")
		}
		if token == "" {
			log.Debug("API request made without shared-secret auth token")
			c.Next()
			return
		}

		parts := strings.Split(token, ",")
		if len(parts) != 3 {
			log.Info("bad shared-secret auth data")
			m.RecordAuthAttempt(SchemeRestSharedSecret, false)
			c.Next()
			return
		}
		email, got, uniqueID := parts[0], parts[1], parts[2]

		want := sharedSecretMAC(email, uniqueID, secretKey)
		if !hmac.Equal([]byte(want), []byte(got)) {
			log.Info("shared-secret auth token does not match")
			m.RecordAuthAttempt(SchemeRestSharedSecret, false)
			c.Next()
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			log.Info("auth token matches absent user", zap.Error(err))
			m.RecordAuthAttempt(SchemeRestSharedSecret, false)
			c.Next()
			return
		}

		m.RecordAuthAttempt(SchemeRestSharedSecret, true)
		ac.authenticate(c, user, SchemeRestSharedSecret)
		log.Info("successful shared secret", zap.Uint("user_id", user.ID))
		c.Next()
	}
}
