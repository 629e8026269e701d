package middleware

import (
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/regions"

	"github.com/gin-gonic/gin"
)

const apiContextKey = "mkt.api_context"

type signedMethodKey struct{}

// APIContext is the per-request state filled in by the API middleware
// chain and read by handlers.
type APIContext struct {
	IsAPI   bool
	Version int

	// User is nil for anonymous requests. AuthedFrom lists the schemes
	// that resolved it, in order.
	User       *models.UserProfile
	AuthedFrom []string

	// Pinned routes reads to the primary database.
	Pinned bool
	Region regions.Region

	// SignedMethod is the method the client signed when it tunnelled the
	// request through X-HTTP-Method-Override; empty otherwise.
	SignedMethod string

	CORSMethods []string
	CORSHeaders []string

	dbWrite bool
}

// GetAPIContext returns the request's APIContext, creating it on first use.
func GetAPIContext(c *gin.Context) *APIContext {
	if v, ok := c.Get(apiContextKey); ok {
		if ac, ok := v.(*APIContext); ok {
			return ac
		}
	}
	ac := &APIContext{Region: regions.RestOfWorld}
	ac.SignedMethod, _ = c.Request.Context().Value(signedMethodKey{}).(string)
	c.Set(apiContextKey, ac)
	return ac
}

// Authenticated reports whether a scheme resolved a user.
func (a *APIContext) Authenticated() bool {
	return a.User != nil
}

func (a *APIContext) authenticate(c *gin.Context, user *models.UserProfile, scheme string) {
	a.User = user
	a.AuthedFrom = append(a.AuthedFrom, scheme)
	c.Request = c.Request.WithContext(models.SetUserContext(c.Request.Context(), user))
}

// MarkDBWrite records that the handler wrote to the database. The rest of
// the request and the caller's next few requests read from the primary.
func MarkDBWrite(c *gin.Context) {
	ac := GetAPIContext(c)
	ac.dbWrite = true
	ac.Pinned = true
}

// AllowCORS sets the methods advertised to cross-origin callers.
func AllowCORS(c *gin.Context, methods ...string) {
	GetAPIContext(c).CORSMethods = methods
}
