package middleware

import (
	"encoding/base64"
	"net/http"

	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	csrfTokenKey    = "csrf_token"
	csrfFormField   = "csrf_token"
	csrfHeaderField = "X-CSRF-Token"
)

// CSRF guards the browser forms (login and the authorize page). The token
// lives in the session and must come back in the csrf_token form field or
// the X-CSRF-Token header on unsafe methods.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		token, _ := session.Get(csrfTokenKey).(string)
		if token == "" {
			raw, err := util.CryptoRandomBytes(32)
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			token = base64.RawURLEncoding.EncodeToString(raw)
			session.Set(csrfTokenKey, token)
			if err := session.Save(); err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}
		c.Set(csrfTokenKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			submitted := c.PostForm(csrfFormField)
			if submitted == "" {
				submitted = c.GetHeader(csrfHeaderField)
			}
			if !util.CompareSecrets(&token, submitted) {
				c.HTML(http.StatusForbidden, "error.html", gin.H{
					"error": "CSRF token validation failed. Please reload the page and try again.",
				})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

// CSRFToken returns the token for the current form.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfTokenKey)
}
