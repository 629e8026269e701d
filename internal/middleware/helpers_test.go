package middleware

import (
	"net/http"
	"net/http/httptest"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"github.com/gin-gonic/gin"
)

func newTestRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware...)
	return r
}

// asUser stands in for the authentication middleware.
func asUser(user *models.UserProfile) gin.HandlerFunc {
	return func(c *gin.Context) {
		GetAPIContext(c).User = user
		c.Next()
	}
}

func do(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
