package config

import (
	"log"
	"strings"
)

const (
	// ProdDbId is the identifier for the production database
	ProdDbId = "old-cloud"

	// Authorize.Net environments accepted in AUTHORIZE_NET_ENVIRONMENT
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// CheckNotProdDB aborts immediately if the configured database URL contains ProdDbId
// or if the gateway is configured against production.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
	if cfg.AuthorizeNetEnvironment == EnvironmentProduction {
		log.Fatal("Tests aborted: Authorize.Net environment is production")
	}
}
