package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/cache"
	"github.com/mozilla/zamboni-sub003/internal/core"
	"github.com/mozilla/zamboni-sub003/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PinningCookie pins browser sessions to the primary after a write.
const PinningCookie = "multidb_pin_writes"

func pinningKey(userID uint) string {
	return fmt.Sprintf("api-pinning:%d", userID)
}

// apiWrite reports whether an API method writes.
func apiWrite(method string) bool {
	switch method {
	case http.MethodDelete, http.MethodPatch, http.MethodPost, http.MethodPut:
		return true
	}
	return false
}

// readOnly reports whether a browser method never writes.
func readOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// pyBool renders the API-Pinned header value.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// APIPinning routes an authenticated API user's reads to the primary
// database while they write and for ttl afterwards. API clients don't keep
// cookies, so the pin is a cache flag keyed by user id. Browser requests
// use the multidb_pin_writes cookie instead.
func APIPinning(flags core.Cache[bool], ttl time.Duration, m metrics.Recorder, log *zap.Logger) gin.HandlerFunc {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	log = componentLogger(log)

	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		if !ac.IsAPI {
			cookiePinning(c, ac, ttl)
			return
		}

		ctx := c.Request.Context()
		write := apiWrite(c.Request.Method)
		if ac.User != nil {
			if write {
				ac.Pinned = true
			} else {
				pinned, err := flags.Get(ctx, pinningKey(ac.User.ID))
				if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
					log.Warn("pinning flag lookup failed", zap.Error(err))
				}
				ac.Pinned = err == nil && pinned
			}
		}
		m.RecordDBPinning(ac.Pinned)

		w := beforeWrite(c, func(int) {
			c.Header(HeaderAPIPinned, pyBool(ac.Pinned))
		})
		c.Next()
		w.flush()

		if ac.User != nil && (write || ac.dbWrite) {
			if err := flags.Set(ctx, pinningKey(ac.User.ID), true, ttl); err != nil {
				log.Warn("failed to set pinning flag", zap.Error(err))
			}
		}
	}
}

func cookiePinning(c *gin.Context, ac *APIContext, ttl time.Duration) {
	if _, err := c.Cookie(PinningCookie); err == nil || !readOnly(c.Request.Method) {
		ac.Pinned = true
	}
	w := beforeWrite(c, func(int) {
		if !readOnly(c.Request.Method) || ac.dbWrite {
			c.SetCookie(PinningCookie, "y", int(ttl.Seconds()), "/", "", false, true)
		}
	})
	c.Next()
	w.flush()
}
