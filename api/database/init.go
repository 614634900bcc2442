package database

import (
	"fmt"
	"log/slog"
)

// schema holds the tables this service reads and writes. user_account normally belongs to
// the host application; it is created here only when missing so a fresh database works.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS user_account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		authorize_net_customer_id TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS webhook_transaction (
		transaction_id TEXT PRIMARY KEY,
		claimed_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables used by the Authorize.Net stores if they do not exist.
func EnsureSchema() error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	slog.Info("database schema ensured", "tables", len(schema))
	return nil
}
