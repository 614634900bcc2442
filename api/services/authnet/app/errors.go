package app

import (
	"errors"
	"fmt"
)

// Typed errors for the Authorize.Net app layer. These enable HTTP mapping without
// relying on gateway wire types at the transport layer.
var (
	// ErrBadEvent indicates the incoming webhook payload is invalid or missing required fields.
	ErrBadEvent = errors.New("bad event")
	// ErrDatabase indicates a database-related failure.
	ErrDatabase = errors.New("database error")
	// ErrGateway indicates a failure from the Authorize.Net API.
	ErrGateway = errors.New("gateway error")
	// ErrInvalidSignature indicates a webhook whose X-ANET-Signature does not match its body.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrPaymentProfileLimit indicates the customer profile already holds the maximum
	// number of payment profiles. It is terminal; retrying cannot succeed.
	ErrPaymentProfileLimit = errors.New("payment profile limit reached")
	// ErrNoCustomerProfile indicates the user has no gateway customer profile yet.
	ErrNoCustomerProfile = errors.New("user has no customer profile")
)

// GatewayError is a non-OK gateway result. It unwraps to ErrGateway.
type GatewayError struct {
	Operation string
	Code      string
	Text      string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s: %s (%s)", ErrGateway, e.Operation, e.Text, e.Code)
}

func (e *GatewayError) Unwrap() error { return ErrGateway }
