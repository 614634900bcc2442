package app

import (
	"log/slog"
	"time"
)

// Level is the severity attached to a charge failure. It drives how loudly callers log
// and the tone of the message shown to the user, never control flow.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// SlogLevel maps the failure severity onto a slog level.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// User is the local account as seen by this layer.
type User struct {
	ID                string
	Email             string
	FirstName         string
	LastName          string
	PhoneNumber       string
	CustomerProfileID string
}

// Address is a US postal address. The gateway street line is AddressLine1 and
// AddressLine2 joined by a space.
type Address struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
}

// OpaqueData is the single-use token produced by Accept.js in place of card data.
type OpaqueData struct {
	DataDescriptor string
	DataValue      string
}

type Card struct {
	Number     string // masked, e.g. XXXX1111
	Expiration string // YYYY-MM when unmasked
	Type       string
}

type PaymentProfile struct {
	ID                string
	CustomerProfileID string
	BillingAddress    Address
	IsDefault         bool
	Card              Card
}

type ShippingAddress struct {
	ID string
	Address
}

type CustomerProfile struct {
	ID                string
	Description       string
	Email             string
	PaymentProfiles   []PaymentProfile
	ShippingAddresses []ShippingAddress
}

// PaymentProfileInput attaches a tokenized card to a customer profile.
type PaymentProfileInput struct {
	CustomerProfileID string
	OpaqueData        OpaqueData
	User              User
	BillingAddress    Address
}

// ChargeRequest charges the default payment profile of a customer profile.
type ChargeRequest struct {
	CustomerProfileID string
	AmountMinorUnits  int64
	User              User
	Description       string
}

// ChargeFailure describes a declined or errored charge. Code is always the gateway's
// own code even when Message comes from the classification table.
type ChargeFailure struct {
	Code    string
	Message string
	Level   Level
}

func (f ChargeFailure) Error() string { return f.Code + ": " + f.Message }

// ChargeResult is the outcome of a charge. Exactly one of TransactionID (Approved) or
// Failure is meaningful.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	Failure       ChargeFailure
}

// TransactionRecord is the read model for gateway transactions. List entries only carry
// ID, SubmitTimeUTC, Status, SettleAmountMinorUnits and the profile ids.
type TransactionRecord struct {
	ID                     string
	SubmitTimeUTC          time.Time
	Description            string
	AuthAmountMinorUnits   int64
	SettleAmountMinorUnits int64
	ResponseCode           int
	Status                 string
	CustomerProfileID      string
	PaymentProfileID       string
}

type PaymentHistoryEntry struct {
	TransactionID    string
	Description      string
	Date             time.Time
	AmountMinorUnits int64
	Refunded         bool
}

type CardSummary struct {
	Brand    string
	ExpMonth string
	ExpYear  string
	Last4    string
}

// PaymentDetails is the billing overview of a customer profile.
type PaymentDetails struct {
	History []PaymentHistoryEntry
	Method  CardSummary
}

// PaymentMethodInput is a new card plus its billing address.
type PaymentMethodInput struct {
	OpaqueData     OpaqueData
	BillingAddress Address
}

// CheckoutRequest runs the full purchase flow for a user.
type CheckoutRequest struct {
	User             User
	PaymentMethod    PaymentMethodInput
	AmountMinorUnits int64
	Description      string
}
