package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// detail writes the error body used by every JSON API endpoint.
func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		detail(c, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return uint(id), true
}

// AccountHandler serves the API identity and consumer credential
// endpoints.
type AccountHandler struct {
	access *services.AccessService
	log    *zap.Logger
}

func NewAccountHandler(access *services.AccessService, log *zap.Logger) *AccountHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountHandler{access: access, log: log}
}

// WhoAmI reports the caller as the middleware chain resolved it.
func (h *AccountHandler) WhoAmI(c *gin.Context) {
	ac := middleware.GetAPIContext(c)
	middleware.AllowCORS(c, http.MethodGet)
	user := ac.User
	c.JSON(http.StatusOK, gin.H{
		"resource_pk":  user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"authed_from":  ac.AuthedFrom,
		"region":       ac.Region.Slug,
		"pinned":       ac.Pinned,
		"api_version":  ac.Version,
	})
}

type accessResponse struct {
	ID          uint      `json:"id"`
	Key         string    `json:"key"`
	Secret      string    `json:"secret,omitempty"`
	AppName     string    `json:"app_name"`
	RedirectURI string    `json:"redirect_uri"`
	Created     time.Time `json:"created"`
}

func newAccessResponse(a *models.Access, withSecret bool) accessResponse {
	resp := accessResponse{
		ID:          a.ID,
		Key:         a.Key,
		AppName:     a.AppName,
		RedirectURI: a.RedirectURI,
		Created:     a.CreatedAt,
	}
	if withSecret {
		resp.Secret = a.PlainSecret
	}
	return resp
}

// ListAccess returns the caller's consumers without their secrets.
func (h *AccountHandler) ListAccess(c *gin.Context) {
	user := middleware.GetAPIContext(c).User
	list, err := h.access.List(c.Request.Context(), user)
	if err != nil {
		h.log.Error("list api access", zap.Uint("user_id", user.ID), zap.Error(err))
		detail(c, http.StatusInternalServerError, "Failed to list API keys.")
		return
	}
	objects := make([]accessResponse, 0, len(list))
	for i := range list {
		objects = append(objects, newAccessResponse(&list[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"objects": objects})
}

type createAccessRequest struct {
	AppName     string `json:"app_name"     form:"app_name"`
	RedirectURI string `json:"redirect_uri" form:"redirect_uri"`
}

// CreateAccess mints a consumer. The secret is only ever returned here.
func (h *AccountHandler) CreateAccess(c *gin.Context) {
	var req createAccessRequest
	if err := c.ShouldBind(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user := middleware.GetAPIContext(c).User
	access, err := h.access.CreateForUser(c.Request.Context(), user, req.AppName, req.RedirectURI)
	switch {
	case errors.Is(err, services.ErrAppNameRequired),
		errors.Is(err, services.ErrInvalidRedirectURI),
		errors.Is(err, services.ErrUnusableClientKey):
		detail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.Error("create api access", zap.Uint("user_id", user.ID), zap.Error(err))
		detail(c, http.StatusInternalServerError, "Failed to create API key.")
		return
	}
	middleware.MarkDBWrite(c)
	c.JSON(http.StatusCreated, newAccessResponse(access, true))
}

func (h *AccountHandler) DeleteAccess(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user := middleware.GetAPIContext(c).User
	err := h.access.Delete(c.Request.Context(), user, id)
	switch {
	case errors.Is(err, services.ErrAccessNotFound):
		detail(c, http.StatusNotFound, "Not found.")
		return
	case err != nil:
		h.log.Error("delete api access", zap.Uint("user_id", user.ID), zap.Error(err))
		detail(c, http.StatusInternalServerError, "Failed to delete API key.")
		return
	}
	middleware.MarkDBWrite(c)
	c.Status(http.StatusNoContent)
}
