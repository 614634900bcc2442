package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	database "github.com/tbeaudouin05/authnet-billing/api/database"
	"github.com/tbeaudouin05/authnet-billing/api/services/authnet/app"
)

// ErrProfileAlreadySet is returned when a user already has a different customer profile id.
var ErrProfileAlreadySet = errors.New("user already has a different customer profile id")

// ErrUserNotFound is returned when no user_account row has the given id.
var ErrUserNotFound = errors.New("user account not found")

// GetUserByCustomerProfileID looks up the local user owning an Authorize.Net customer profile.
func GetUserByCustomerProfileID(ctx context.Context, customerProfileID string) (app.User, bool, error) {
	var (
		u         app.User
		profileID sql.NullString
	)
	err := database.GetDB().QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, phone_number, authorize_net_customer_id
		   FROM user_account
		  WHERE authorize_net_customer_id = $1`, customerProfileID,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber, &profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return app.User{}, false, nil
	}
	if err != nil {
		return app.User{}, false, fmt.Errorf("failed to query user_account: %w", err)
	}
	u.CustomerProfileID = profileID.String
	return u, true, nil
}

// GetUser loads a user_account row by id.
func GetUser(ctx context.Context, userID string) (app.User, error) {
	var (
		u         app.User
		profileID sql.NullString
	)
	err := database.GetDB().QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, phone_number, authorize_net_customer_id
		   FROM user_account
		  WHERE id = $1`, userID,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber, &profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return app.User{}, ErrUserNotFound
	}
	if err != nil {
		return app.User{}, fmt.Errorf("failed to query user_account: %w", err)
	}
	u.CustomerProfileID = profileID.String
	return u, nil
}

// UpsertUser inserts or refreshes the contact fields of a user. The customer profile id
// is never touched here; see SetCustomerProfileID.
func UpsertUser(ctx context.Context, u app.User) error {
	_, err := database.GetDB().ExecContext(ctx,
		`INSERT INTO user_account (id, email, first_name, last_name, phone_number)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		    SET email = EXCLUDED.email,
		        first_name = EXCLUDED.first_name,
		        last_name = EXCLUDED.last_name,
		        phone_number = EXCLUDED.phone_number`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PhoneNumber)
	if err != nil {
		return fmt.Errorf("failed to upsert user_account: %w", err)
	}
	return nil
}

// SetCustomerProfileID stores the customer profile id of a user. It is write-once:
// setting the same id again is a no-op, setting a different one fails.
func SetCustomerProfileID(ctx context.Context, userID, customerProfileID string) error {
	res, err := database.GetDB().ExecContext(ctx,
		`UPDATE user_account
		    SET authorize_net_customer_id = $2
		  WHERE id = $1 AND authorize_net_customer_id IS NULL`,
		userID, customerProfileID)
	if err != nil {
		return fmt.Errorf("failed to update user_account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	u, err := GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if u.CustomerProfileID != customerProfileID {
		return fmt.Errorf("%w: user %s has %s", ErrProfileAlreadySet, userID, u.CustomerProfileID)
	}
	return nil
}

// ClaimWebhookTransaction records a transaction id as being handled. It returns false
// when another delivery already holds the claim.
func ClaimWebhookTransaction(ctx context.Context, transactionID string) (bool, error) {
	res, err := database.GetDB().ExecContext(ctx,
		`INSERT INTO webhook_transaction (transaction_id) VALUES ($1)
		 ON CONFLICT (transaction_id) DO NOTHING`, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to insert webhook_transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// ReleaseWebhookTransaction drops a claim so a later delivery can retry.
func ReleaseWebhookTransaction(ctx context.Context, transactionID string) error {
	_, err := database.GetDB().ExecContext(ctx,
		`DELETE FROM webhook_transaction WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete webhook_transaction: %w", err)
	}
	return nil
}

// Store exposes the package functions as app.UserStore and app.TransactionClaimer.
type Store struct{}

func (Store) FindUserByCustomerProfileID(ctx context.Context, customerProfileID string) (app.User, bool, error) {
	return GetUserByCustomerProfileID(ctx, customerProfileID)
}

func (Store) SetCustomerProfileID(ctx context.Context, userID, customerProfileID string) error {
	return SetCustomerProfileID(ctx, userID, customerProfileID)
}

func (Store) Claim(ctx context.Context, transactionID string) (bool, error) {
	return ClaimWebhookTransaction(ctx, transactionID)
}

func (Store) Release(ctx context.Context, transactionID string) error {
	return ReleaseWebhookTransaction(ctx, transactionID)
}

var (
	_ app.UserStore          = Store{}
	_ app.TransactionClaimer = Store{}
)
