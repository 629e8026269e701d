package bootstrap

import (
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/logging"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/payments"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/solitude"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"go.uber.org/zap"
)

// initializeServices creates all business logic services
func initializeServices(
	cfg *config.Config,
	db *store.Store,
	m metrics.Recorder,
	log *zap.Logger,
) (*services.UserService, *services.AccessService, *services.OAuthService) {
	oauthLog := logging.Component(log, "oauth")
	server := oauth1.NewServer(
		oauth1.NewStoreValidator(db, oauthLog),
		oauth1.WithTimestampWindow(cfg.OAuthTimestampWindow),
		oauth1.WithLogger(oauthLog),
	)
	if cfg.OAuthTwoLeggedEnabled {
		log.Warn("two-legged oauth is enabled; consumer credentials alone act as their owner")
	}

	userService := services.NewUserService(db, m, logging.Component(log, "users"))
	accessService := services.NewAccessService(db, logging.Component(log, "access"))
	oauthService := services.NewOAuthService(db, server, cfg, m, oauthLog)
	return userService, accessService, oauthService
}

// initializePayments builds the gateway client and the provider registry
func initializePayments(
	cfg *config.Config,
	db *store.Store,
	m metrics.Recorder,
	log *zap.Logger,
) (*payments.Registry, error) {
	if cfg.SolitudeURL == "" {
		log.Warn("SOLITUDE_URL is not set; payment account calls will fail")
	}
	gateway, err := solitude.NewFromConfig(cfg, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment gateway client: %w", err)
	}
	registry := payments.NewRegistry(cfg, gateway, db, m, logging.Component(log, "providers"))
	log.Info("payment providers ready",
		zap.Strings("providers", cfg.PaymentProviders),
		zap.String("default", cfg.DefaultPaymentProvider))
	return registry, nil
}
