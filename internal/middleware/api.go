package middleware

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIVersion     = "API-Version"
	HeaderAPIStatus      = "API-Status"
	HeaderAPIFilter      = "API-Filter"
	HeaderAPIPinned      = "API-Pinned"
	HeaderMethodOverride = "X-HTTP-Method-Override"
)

var (
	versionRe = regexp.MustCompile(`^/api/v(\d+)/`)

	defaultCORSHeaders = []string{HeaderMethodOverride, "Content-Type"}
)

// isAPIPath reports whether the first path segment is "api".
func isAPIPath(path string) bool {
	prefix, _, _ := strings.Cut(strings.TrimLeft(path, "/"), "/")
	return strings.EqualFold(prefix, "api")
}

// detectVersion returns the version in /api/vN/, defaulting to 1.
func detectVersion(path string) int {
	m := versionRe.FindStringSubmatch(path)
	if m == nil {
		return 1
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return v
}

// APIBase flags API requests, detects their version and marks responses
// from versions older than current as deprecated.
func APIBase(currentVersion int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		if !isAPIPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		ac.IsAPI = true
		ac.Version = detectVersion(c.Request.URL.Path)

		c.Header(HeaderAPIVersion, strconv.Itoa(ac.Version))
		if ac.Version < currentVersion {
			c.Header(HeaderAPIStatus, "Deprecated")
		}
		c.Next()
	}
}

// CORS adds the cross-origin headers. Handlers choose the allowed methods
// with AllowCORS; failed API responses allow the request's own method so
// browsers can read the error.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		w := beforeWrite(c, func(status int) {
			h := c.Writer.Header()

			headers := ac.CORSHeaders
			if len(headers) == 0 {
				headers = defaultCORSHeaders
			}
			h.Set("Access-Control-Allow-Headers", strings.Join(headers, ", "))

			methods := ac.CORSMethods
			if methods == nil && status >= 300 && ac.IsAPI {
				methods = []string{c.Request.Method}
			}
			if len(methods) > 0 {
				h.Set("Access-Control-Allow-Origin", "*")
				h.Set("Access-Control-Allow-Methods", strings.Join(corsMethods(methods), ", "))
			}

			h.Set("Access-Control-Expose-Headers",
				strings.Join([]string{HeaderAPIFilter, HeaderAPIStatus, HeaderAPIVersion}, ", "))
		})
		c.Next()
		w.flush()
	}
}

func corsMethods(methods []string) []string {
	out := make([]string, 0, len(methods)+1)
	hasOptions := false
	for _, m := range methods {
		m = strings.ToUpper(m)
		if m == http.MethodOptions {
			hasOptions = true
		}
		out = append(out, m)
	}
	if !hasOptions {
		out = append(out, http.MethodOptions)
	}
	return out
}

// APIFilter reports the filters applied to an API response in the
// API-Filter header.
func APIFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		if !ac.IsAPI {
			c.Next()
			return
		}
		w := beforeWrite(c, func(status int) {
			if status >= http.StatusInternalServerError {
				return
			}
			c.Header(HeaderAPIFilter, filterValue(c, ac))
			c.Writer.Header().Add("Vary", HeaderAPIFilter)
		})
		c.Next()
		w.flush()
	}
}

// filterValue encodes device, lang, pro and region in that order.
func filterValue(c *gin.Context, ac *APIContext) string {
	parts := make([]string, 0, 5)
	for _, d := range devices(c) {
		parts = append(parts, "device="+url.QueryEscape(d))
	}
	parts = append(parts,
		"lang="+url.QueryEscape(requestLang(c)),
		"pro="+url.QueryEscape(c.Query("pro")),
		"region="+url.QueryEscape(ac.Region.Slug),
	)
	return strings.Join(parts, "&")
}

// devices maps the dev/device query parameters to device filters.
func devices(c *gin.Context) []string {
	switch strings.ToLower(c.Query("dev")) {
	case "firefoxos":
		return []string{"gaia"}
	case "android":
		if strings.EqualFold(c.Query("device"), "tablet") {
			return []string{"tablet"}
		}
		return []string{"mobile"}
	case "tv":
		return []string{"tv"}
	}
	return nil
}

// requestLang prefers ?lang= and falls back to the first Accept-Language
// tag.
func requestLang(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	if accept == "" {
		return "en-US"
	}
	tag, _, _ := strings.Cut(accept, ",")
	tag, _, _ = strings.Cut(tag, ";")
	if tag = strings.TrimSpace(tag); tag == "" || tag == "*" {
		return "en-US"
	}
	return tag
}

// APIGzip compresses API responses only. Browser pages carry CSRF tokens
// and stay uncompressed to avoid BREACH.
func APIGzip() gin.HandlerFunc {
	gz := gzip.Gzip(gzip.DefaultCompression)
	return func(c *gin.Context) {
		if !GetAPIContext(c).IsAPI {
			c.Next()
			return
		}
		gz(c)
	}
}

// MethodOverride lets clients tunnel PATCH, PUT and DELETE through POST.
// It wraps the router because gin picks the route by method before any
// middleware runs. The original method is kept for OAuth signature checks.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		override := r.Header.Get(HeaderMethodOverride)
		if r.Method == http.MethodPost && override != "" {
			r = r.WithContext(context.WithValue(r.Context(), signedMethodKey{}, r.Method))
			r.Method = strings.ToUpper(override)
		}
		next.ServeHTTP(w, r)
	})
}
