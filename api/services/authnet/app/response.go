package app

import (
	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

type transactionErrorer interface {
	TransactionErrors() []gw.TransactionError
}

// checkResponse returns nil for an OK envelope and a *GatewayError otherwise. When the
// envelope carries per-transaction errors, the first of those is reported instead of the
// top-level message.
func checkResponse(operation string, resp gw.Response) error {
	env := resp.Envelope()
	if env.OK() {
		return nil
	}
	if te, ok := resp.(transactionErrorer); ok {
		if errs := te.TransactionErrors(); len(errs) > 0 {
			return &GatewayError{Operation: operation, Code: errs[0].ErrorCode, Text: errs[0].ErrorText}
		}
	}
	msg := env.Messages.First()
	return &GatewayError{Operation: operation, Code: msg.Code, Text: msg.Text}
}
