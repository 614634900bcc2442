package app

import (
	"context"
	"fmt"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

// Service defines the billing operations backed by Authorize.Net.
type Service interface {
	CreateCustomerProfile(ctx context.Context, user User) (string, error)
	GetCustomerProfile(ctx context.Context, customerProfileID string) (CustomerProfile, error)
	UpdateCustomerProfile(ctx context.Context, customerProfileID, email string) error
	UpdateShippingAddress(ctx context.Context, customerProfileID string, address Address) error

	CreatePaymentProfile(ctx context.Context, in PaymentProfileInput) (string, error)
	GetCustomerPaymentProfile(ctx context.Context, customerProfileID, paymentProfileID string) (PaymentProfile, error)

	ChargeCustomerProfile(ctx context.Context, req ChargeRequest) (ChargeResult, error)

	GetTransactionDetails(ctx context.Context, transactionID string) (TransactionRecord, error)
	GetTransactionList(ctx context.Context, customerProfileID string) ([]TransactionRecord, error)
	GetPaymentDetails(ctx context.Context, customerProfileID string) (PaymentDetails, error)

	Checkout(ctx context.Context, req CheckoutRequest) (ChargeResult, error)
	UpdateBillingInfo(ctx context.Context, user User, method PaymentMethodInput) (string, error)

	VerifyWebhookSignature(rawBody []byte, signatureHeader string) bool
	DispatchWebhookEvent(ctx context.Context, event WebhookEvent) error
	HandleWebhook(ctx context.Context, rawBody []byte, signatureHeader string) error
}

// UserStore is the narrow view of local user persistence this layer needs.
type UserStore interface {
	// FindUserByCustomerProfileID reports found=false when no user owns the profile.
	FindUserByCustomerProfileID(ctx context.Context, customerProfileID string) (user User, found bool, err error)
	// SetCustomerProfileID persists the gateway id for a user. It must refuse to replace
	// a different id that is already stored.
	SetCustomerProfileID(ctx context.Context, userID, customerProfileID string) error
}

// TransactionClaimer records which webhook transactions have been handled so that
// at-least-once delivery reconciles each transaction once.
type TransactionClaimer interface {
	// Claim returns true when the caller is the first to claim transactionID.
	Claim(ctx context.Context, transactionID string) (bool, error)
	// Release drops a claim so a later delivery can retry.
	Release(ctx context.Context, transactionID string) error
}

// Reconciler applies a confirmed payment to local state. marker is the configured
// order-description marker that matched the transaction.
type Reconciler interface {
	ReconcilePayment(ctx context.Context, user User, txn TransactionRecord, marker string) error
}

// Dependencies wires the service. Users, Claims and Reconciler are only needed by
// Checkout and webhook dispatch.
type Dependencies struct {
	Executor     gw.Executor
	Credentials  gw.CredentialProvider
	Users        UserStore
	Claims       TransactionClaimer
	Reconciler   Reconciler
	SignatureKey string
	// Markers are matched as substrings of a transaction's order description.
	Markers []string
}

// serviceImpl is the concrete implementation. It holds no per-call state; profileLocks
// only serializes payment-profile writes issued through Checkout and UpdateBillingInfo.
type serviceImpl struct {
	exec         gw.Executor
	creds        gw.CredentialProvider
	users        UserStore
	claims       TransactionClaimer
	reconciler   Reconciler
	signatureKey []byte
	markers      []string
	profileLocks *keyedMutex
}

func NewService(d Dependencies) Service {
	return &serviceImpl{
		exec:         d.Executor,
		creds:        d.Credentials,
		users:        d.Users,
		claims:       d.Claims,
		reconciler:   d.Reconciler,
		signatureKey: []byte(d.SignatureKey),
		markers:      append([]string(nil), d.Markers...),
		profileLocks: newKeyedMutex(),
	}
}

func (s *serviceImpl) auth() gw.MerchantAuthentication {
	return s.creds.Credential().Authentication()
}

// execute sends req without inspecting the result code. Transport errors are wrapped in
// ErrGateway as well so callers can branch on a single sentinel.
func (s *serviceImpl) execute(ctx context.Context, req gw.Request, resp gw.Response) error {
	if err := s.exec.Execute(ctx, req, resp); err != nil {
		return fmt.Errorf("%w: %w", ErrGateway, err)
	}
	return nil
}

// call executes req and fails on any non-OK envelope.
func (s *serviceImpl) call(ctx context.Context, req gw.Request, resp gw.Response) error {
	if err := s.execute(ctx, req, resp); err != nil {
		return err
	}
	return checkResponse(req.RequestName(), resp)
}
