package app

import (
	"context"
	"log/slog"
)

// LogReconciler only records that a payment was matched. Hosts that grant access or
// credit on payment replace it with their own Reconciler.
type LogReconciler struct{}

func (LogReconciler) ReconcilePayment(ctx context.Context, user User, txn TransactionRecord, marker string) error {
	slog.InfoContext(ctx, "payment reconciled",
		"user_id", user.ID,
		"transaction_id", txn.ID,
		"amount_minor_units", txn.AuthAmountMinorUnits,
		"marker", marker)
	return nil
}
