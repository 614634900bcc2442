package gateway

import (
	"context"
	"errors"
)

// Executor sends one request to the Authorize.Net API and decodes the reply into resp.
// Implementations must not retry: a call either returns the decoded envelope or an error.
type Executor interface {
	Execute(ctx context.Context, req Request, resp Response) error
}

// Request is an operation body. RequestName is the JSON root key the API expects,
// e.g. "createCustomerProfileRequest".
type Request interface {
	RequestName() string
}

// Response is any decoded response envelope.
type Response interface {
	Envelope() ResponseBase
}

// ErrEmptyResponse is returned when the gateway answers with no body.
var ErrEmptyResponse = errors.New("empty response from authorize.net")

// Result codes carried in Messages.ResultCode.
const (
	ResultOK    = "Ok"
	ResultError = "Error"
)

// Message codes with special handling.
const (
	// CodeDuplicateRecord is returned when a customer or payment profile already exists.
	CodeDuplicateRecord = "E00039"
	// CodeMaxPaymentProfiles is returned when a customer profile already holds the
	// maximum number of payment profiles.
	CodeMaxPaymentProfiles = "E00042"
)

// TransactionApproved is the transactionResponse.responseCode of an approved charge.
const TransactionApproved = "1"

// MaxPaymentProfiles is the gateway's per-customer-profile payment profile ceiling.
const MaxPaymentProfiles = 10
