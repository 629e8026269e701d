package handlers

import (
	"errors"
	"net/http"

	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/templates"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler owns browser login, which the consent page requires.
type SessionHandler struct {
	users   *services.UserService
	baseURL string
	log     *zap.Logger
}

func NewSessionHandler(users *services.UserService, baseURL string, log *zap.Logger) *SessionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionHandler{users: users, baseURL: baseURL, log: log}
}

// safeNext falls back to "/" for redirects leaving the site.
func (h *SessionHandler) safeNext(next string) string {
	if next == "" || !util.IsRedirectSafe(next, h.baseURL) {
		return "/"
	}
	return next
}

// LoginPage renders the login form, or skips it when the session is
// already bound to a user.
func (h *SessionHandler) LoginPage(c *gin.Context) {
	next := c.Query("next")
	if id, ok := middleware.SessionUserIDFrom(c); ok {
		if _, err := h.users.GetUserByID(c.Request.Context(), id); err == nil {
			c.Redirect(http.StatusFound, h.safeNext(next))
			return
		}
	}
	h.renderLogin(c, http.StatusOK, templates.LoginPageProps{Next: next})
}

func (h *SessionHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	next := c.PostForm("next")

	user, err := h.users.Authenticate(c.Request.Context(), email, c.PostForm("password"))
	if err != nil {
		msg := "Login failed. Please try again."
		if errors.Is(err, services.ErrInvalidCredentials) {
			msg = "Invalid email or password."
		}
		h.renderLogin(c, http.StatusUnauthorized, templates.LoginPageProps{
			Email: email,
			Error: msg,
			Next:  next,
		})
		return
	}

	if err := middleware.LogIn(c, user); err != nil {
		h.log.Error("save session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to create session"})
		return
	}
	h.log.Info("user logged in", zap.Uint("user_id", user.ID))
	c.Redirect(http.StatusFound, h.safeNext(next))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := middleware.LogOut(c); err != nil {
		h.log.Warn("clear session", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *SessionHandler) renderLogin(c *gin.Context, status int, props templates.LoginPageProps) {
	props.CSRFToken = middleware.CSRFToken(c)
	c.HTML(status, "login.html", props)
}
