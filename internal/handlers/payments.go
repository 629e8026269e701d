package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/payments"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var errNotOwner = errors.New("not the owner")

// PaymentsHandler exposes the payment account lifecycle to developers.
type PaymentsHandler struct {
	registry *payments.Registry
	store    *store.Store
	log      *zap.Logger
}

func NewPaymentsHandler(r *payments.Registry, s *store.Store, log *zap.Logger) *PaymentsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentsHandler{registry: r, store: s, log: log.With(zap.String("component", "payments"))}
}

type accountResponse struct {
	ID        uint           `json:"resource_pk"`
	Name      string         `json:"account_name"`
	Provider  string         `json:"provider"`
	URI       string         `json:"account_uri"`
	AgreedTOS bool           `json:"agreed_tos"`
	Shared    bool           `json:"shared"`
	Details   map[string]any `json:"details,omitempty"`
}

func newAccountResponse(acct *models.PaymentAccount, details map[string]any) accountResponse {
	return accountResponse{
		ID:        acct.ID,
		Name:      acct.Name,
		Provider:  payments.ProviderID(acct.Provider).Name(),
		URI:       acct.URI,
		AgreedTOS: acct.AgreedTOS,
		Shared:    acct.Shared,
		Details:   details,
	}
}

// fail maps payment and gateway errors onto API responses.
func (h *PaymentsHandler) fail(c *gin.Context, op string, err error) {
	var apiErr *solitude.APIError
	switch {
	case errors.Is(err, errNotOwner), errors.Is(err, store.ErrRecordNotFound):
		detail(c, http.StatusNotFound, "Not found.")
	case errors.Is(err, payments.ErrWrongProvider),
		errors.Is(err, payments.ErrProviderNotAllowed),
		errors.Is(err, payments.ErrUnknownProvider),
		errors.Is(err, payments.ErrAccountNameRequired):
		detail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, payments.ErrCantCancel), errors.Is(err, store.ErrDuplicate):
		detail(c, http.StatusConflict, err.Error())
	case errors.As(err, &apiErr),
		errors.Is(err, solitude.ErrNotFound),
		errors.Is(err, solitude.ErrMultipleObjects),
		errors.Is(err, solitude.ErrConnection),
		errors.Is(err, solitude.ErrInvalidResponse):
		h.log.Error("gateway failure", zap.String("operation", op), zap.Error(err))
		detail(c, http.StatusBadGateway, "Payment server error.")
	default:
		h.log.Error("payments request failed", zap.String("operation", op), zap.Error(err))
		detail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// readForm accepts a JSON object or a urlencoded body. Non-string JSON
// values are formatted with fmt.
func readForm(c *gin.Context) (payments.AccountForm, error) {
	form := payments.AccountForm{}
	if c.ContentType() == binding.MIMEJSON {
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			switch v := v.(type) {
			case nil:
			case string:
				form[k] = v
			default:
				form[k] = fmt.Sprint(v)
			}
		}
		return form, nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	for k := range c.Request.PostForm {
		form[k] = c.Request.PostForm.Get(k)
	}
	return form, nil
}

// ownedAccount loads the :id account and checks it belongs to the caller.
func (h *PaymentsHandler) ownedAccount(c *gin.Context) (*models.PaymentAccount, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, errNotOwner
	}
	ac := middleware.GetAPIContext(c)
	acct, err := h.store.ForRequest(ac.Pinned).GetPaymentAccount(c.Request.Context(), uint(id))
	if err != nil {
		return nil, err
	}
	if acct.UserID != ac.User.ID || acct.Inactive {
		return nil, errNotOwner
	}
	return acct, nil
}

// ListProviders returns the providers developers may create accounts with.
func (h *PaymentsHandler) ListProviders(c *gin.Context) {
	middleware.AllowCORS(c, http.MethodGet)
	appSlug := c.Query("app_slug")
	objects := make([]gin.H, 0)
	for _, p := range h.registry.GetProviders() {
		objects = append(objects, gin.H{
			"name":       p.Name(),
			"full_name":  p.FullName(),
			"portal_url": p.PortalURL(appSlug),
		})
	}
	c.JSON(http.StatusOK, gin.H{"objects": objects})
}

func (h *PaymentsHandler) ListAccounts(c *gin.Context) {
	ac := middleware.GetAPIContext(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := store.NewPaginationParams(page, limit, c.Query("search"))

	accounts, pagination, err := h.store.ForRequest(ac.Pinned).
		ListPaymentAccounts(c.Request.Context(), ac.User.ID, params)
	if err != nil {
		h.fail(c, "list_accounts", err)
		return
	}
	objects := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		objects = append(objects, newAccountResponse(&accounts[i], nil))
	}
	c.JSON(http.StatusOK, gin.H{"meta": pagination, "objects": objects})
}

// CreateAccount creates an account with the provider named in the
// "provider" field, or the default provider.
func (h *PaymentsHandler) CreateAccount(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	p, err := h.registry.GetProvider(form["provider"])
	if err != nil {
		h.fail(c, "account_create", err)
		return
	}
	delete(form, "provider")

	user := middleware.GetAPIContext(c).User
	acct, err := p.AccountCreate(c.Request.Context(), user, form)
	if err != nil {
		h.fail(c, "account_create", err)
		return
	}
	middleware.MarkDBWrite(c)
	h.log.Info("payment account created",
		zap.Uint("user_id", user.ID),
		zap.Uint("account_id", acct.ID),
		zap.String("provider", p.Name()))
	c.JSON(http.StatusCreated, newAccountResponse(acct, nil))
}

// GetAccount returns the account with the provider's view of it.
func (h *PaymentsHandler) GetAccount(c *gin.Context) {
	acct, err := h.ownedAccount(c)
	if err != nil {
		h.fail(c, "account_retrieve", err)
		return
	}
	p, v, err := h.registry.ForAccount(acct)
	if err != nil {
		h.fail(c, "account_retrieve", err)
		return
	}
	details, err := p.AccountRetrieve(c.Request.Context(), v)
	if err != nil {
		h.fail(c, "account_retrieve", err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(acct, details))
}

func (h *PaymentsHandler) UpdateAccount(c *gin.Context) {
	acct, err := h.ownedAccount(c)
	if err != nil {
		h.fail(c, "account_update", err)
		return
	}
	form, err := readForm(c)
	if err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	p, v, err := h.registry.ForAccount(acct)
	if err != nil {
		h.fail(c, "account_update", err)
		return
	}
	if err := p.AccountUpdate(c.Request.Context(), v, form); err != nil {
		h.fail(c, "account_update", err)
		return
	}
	middleware.MarkDBWrite(c)
	c.JSON(http.StatusOK, newAccountResponse(acct, nil))
}

// DeleteAccount cancels the account. ?disable_refs=true also drops apps
// left without any account back to the null status.
func (h *PaymentsHandler) DeleteAccount(c *gin.Context) {
	acct, err := h.ownedAccount(c)
	if err != nil {
		h.fail(c, "account_cancel", err)
		return
	}
	disableRefs, _ := strconv.ParseBool(c.DefaultQuery("disable_refs", "false"))
	if err := h.registry.CancelAccount(c.Request.Context(), acct, disableRefs); err != nil {
		h.fail(c, "account_cancel", err)
		return
	}
	middleware.MarkDBWrite(c)
	c.Status(http.StatusNoContent)
}

func (h *PaymentsHandler) GetTerms(c *gin.Context) {
	h.terms(c, "terms_retrieve", payments.Provider.TermsRetrieve)
}

// AgreeTerms records the developer's acceptance of the provider terms.
func (h *PaymentsHandler) AgreeTerms(c *gin.Context) {
	h.terms(c, "terms_update", payments.Provider.TermsUpdate)
}

func (h *PaymentsHandler) terms(
	c *gin.Context,
	op string,
	call func(payments.Provider, context.Context, payments.ValidatedAccount) (map[string]any, error),
) {
	acct, err := h.ownedAccount(c)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	p, v, err := h.registry.ForAccount(acct)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	terms, err := call(p, c.Request.Context(), v)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	if op == "terms_update" {
		middleware.MarkDBWrite(c)
	}
	c.JSON(http.StatusOK, terms)
}

type linkAppRequest struct {
	PaymentAccount uint `json:"payment_account" form:"payment_account" binding:"required"`
}

// LinkApp creates the app's product with the provider and records which
// account receives its payments.
func (h *PaymentsHandler) LinkApp(c *gin.Context) {
	var req linkAppRequest
	if err := c.ShouldBind(&req); err != nil {
		detail(c, http.StatusBadRequest, "payment_account is required.")
		return
	}
	appID, err := strconv.ParseUint(c.Param("app_id"), 10, 64)
	if err != nil {
		h.fail(c, "product_create", errNotOwner)
		return
	}

	ctx := c.Request.Context()
	ac := middleware.GetAPIContext(c)
	app, err := h.store.ForRequest(ac.Pinned).GetWebapp(ctx, uint(appID))
	if err != nil {
		h.fail(c, "product_create", err)
		return
	}
	if app.OwnerID != ac.User.ID {
		h.fail(c, "product_create", errNotOwner)
		return
	}
	acct, err := h.store.ForRequest(ac.Pinned).GetPaymentAccount(ctx, req.PaymentAccount)
	if err != nil {
		h.fail(c, "product_create", err)
		return
	}
	if acct.Inactive || (acct.UserID != ac.User.ID && !acct.Shared) {
		h.fail(c, "product_create", errNotOwner)
		return
	}

	p, v, err := h.registry.ForAccount(acct)
	if err != nil {
		h.fail(c, "product_create", err)
		return
	}
	productURI, err := p.ProductCreate(ctx, v, app)
	if err != nil {
		h.fail(c, "product_create", err)
		return
	}
	ref := &models.AddonPaymentAccount{
		AddonID:          app.ID,
		PaymentAccountID: acct.ID,
		AccountURI:       acct.URI,
		ProductURI:       productURI,
	}
	if err := h.store.CreateAddonPaymentAccount(ctx, ref); err != nil {
		h.fail(c, "product_create", err)
		return
	}
	middleware.MarkDBWrite(c)
	h.log.Info("app linked to payment account",
		zap.Uint("app_id", app.ID),
		zap.Uint("account_id", acct.ID),
		zap.String("product_uri", productURI))
	c.JSON(http.StatusCreated, gin.H{
		"app":             app.ID,
		"payment_account": acct.ID,
		"account_uri":     acct.URI,
		"product_uri":     productURI,
	})
}
