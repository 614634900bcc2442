package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	DatabaseURL string
	// Authorize.Net merchant credentials
	AuthorizeNetLoginID        string
	AuthorizeNetTransactionKey string
	AuthorizeNetEnvironment    string
	// Key used to sign webhook notifications (X-ANET-Signature)
	AuthorizeNetSignatureKey string
	// Optional: when set, webhook claims are kept in Redis instead of Postgres
	RedisAddr     string
	RedisPassword string
	// Optional: comma separated order-description markers that trigger reconciliation
	WebhookReconcileMarkers string
	// Server port
	HTTPPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"DatabaseURL", "DATABASE_URL", "Database URL", true},
		{"AuthorizeNetLoginID", "AUTHORIZE_NET_LOGIN_ID", "Authorize.Net API Login ID", true},
		{"AuthorizeNetTransactionKey", "AUTHORIZE_NET_TRANSACTION_KEY", "Authorize.Net Transaction Key", true},
		{"AuthorizeNetSignatureKey", "AUTHORIZE_NET_SIGNATURE_KEY", "Authorize.Net Signature Key", true},
		{"AuthorizeNetEnvironment", "AUTHORIZE_NET_ENVIRONMENT", "Authorize.Net Environment", false},
		{"RedisAddr", "REDIS_ADDR", "Redis Address", false},
		{"RedisPassword", "REDIS_PASSWORD", "Redis Password", false},
		{"WebhookReconcileMarkers", "WEBHOOK_RECONCILE_MARKERS", "Webhook Reconcile Markers", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	config.AuthorizeNetEnvironment = strings.ToLower(strings.TrimSpace(config.AuthorizeNetEnvironment))
	if config.AuthorizeNetEnvironment == "" {
		config.AuthorizeNetEnvironment = EnvironmentSandbox
	}
	if config.AuthorizeNetEnvironment != EnvironmentSandbox && config.AuthorizeNetEnvironment != EnvironmentProduction {
		return nil, fmt.Errorf("invalid AUTHORIZE_NET_ENVIRONMENT %q: expected %q or %q",
			config.AuthorizeNetEnvironment, EnvironmentSandbox, EnvironmentProduction)
	}

	return config, nil
}

// ReconcileMarkers splits WebhookReconcileMarkers into its non-empty entries.
func (c *Config) ReconcileMarkers() []string {
	var markers []string
	for _, m := range strings.Split(c.WebhookReconcileMarkers, ",") {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	return markers
}
