package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserID = "user_id"

	sessionUserKey = "mkt.session_user"
)

// UserByID loads the user behind a browser session.
// *services.UserService implements it.
type UserByID interface {
	GetUserByID(ctx context.Context, id uint) (*models.UserProfile, error)
}

// RequireLogin sends browsers without a valid session to /login, with the
// current URL in ?next=.
func RequireLogin(users UserByID) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := SessionUserIDFrom(c)
		if ok {
			user, err := users.GetUserByID(c.Request.Context(), id)
			if err == nil {
				c.Set(sessionUserKey, user)
				c.Next()
				return
			}
			session := sessions.Default(c)
			session.Delete(SessionUserID)
			_ = session.Save()
		}

		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// SessionUserIDFrom returns the user id stored in the browser session.
func SessionUserIDFrom(c *gin.Context) (uint, bool) {
	id, ok := sessions.Default(c).Get(SessionUserID).(uint)
	return id, ok
}

// SessionUser returns the user loaded by RequireLogin, or nil.
func SessionUser(c *gin.Context) *models.UserProfile {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.UserProfile)
	return user
}

// LogIn binds the browser session to user.
func LogIn(c *gin.Context, user *models.UserProfile) error {
	session := sessions.Default(c)
	session.Set(SessionUserID, user.ID)
	return session.Save()
}

// LogOut drops the session user.
func LogOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionUserID)
	return session.Save()
}
