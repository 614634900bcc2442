package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tbeaudouin05/authnet-billing/api/config"
	"github.com/tbeaudouin05/authnet-billing/api/database"
	authnetapp "github.com/tbeaudouin05/authnet-billing/api/services/authnet/app"
	authnetdb "github.com/tbeaudouin05/authnet-billing/api/services/authnet/db"
	"github.com/tbeaudouin05/authnet-billing/api/services/authnet/dedupe"
	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
	authnetgw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway/authnet"
)

var billingService authnetapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config, database, and third-party clients, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if billingService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	if err := database.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.EnsureSchema(); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	env := gw.Environment(cfg.AuthorizeNetEnvironment)
	creds := gw.StaticCredentials(gw.MerchantCredential{
		LoginID:        cfg.AuthorizeNetLoginID,
		TransactionKey: cfg.AuthorizeNetTransactionKey,
		Environment:    env,
	})

	store := authnetdb.Store{}
	var claims authnetapp.TransactionClaimer = store
	if cfg.RedisAddr != "" {
		client, err := dedupe.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		claims = dedupe.NewRedisClaimer(client, dedupe.DefaultTTL)
		slog.Info("webhook claims stored in redis", "addr", cfg.RedisAddr)
	}

	billingService = authnetapp.NewService(authnetapp.Dependencies{
		Executor:     authnetgw.New(env),
		Credentials:  creds,
		Users:        store,
		Claims:       claims,
		Reconciler:   authnetapp.LogReconciler{},
		SignatureKey: cfg.AuthorizeNetSignatureKey,
		Markers:      cfg.ReconcileMarkers(),
	})
	slog.Info("billing service initialized", "environment", env)
	return nil
}

func GetBillingService() authnetapp.Service { return billingService }

// SetBillingService allows tests to inject a stub implementation.
func SetBillingService(s authnetapp.Service) { billingService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
