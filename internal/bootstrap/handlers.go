package bootstrap

import (
	"github.com/mozilla/zamboni-sub003/internal/handlers"
)

// handlerSet holds all HTTP handlers
type handlerSet struct {
	oauth    *handlers.OAuthHandler
	session  *handlers.SessionHandler
	account  *handlers.AccountHandler
	payments *handlers.PaymentsHandler
}

// initializeHandlers creates all HTTP handlers
func initializeHandlers(app *Application) handlerSet {
	return handlerSet{
		oauth:    handlers.NewOAuthHandler(app.OAuthService, app.Logger),
		session:  handlers.NewSessionHandler(app.UserService, app.Config.SiteURL, app.Logger),
		account:  handlers.NewAccountHandler(app.AccessService, app.Logger),
		payments: handlers.NewPaymentsHandler(app.Payments, app.DB, app.Logger),
	}
}
