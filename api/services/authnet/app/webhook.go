package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Authorize.Net webhook event types.
const (
	EventAuthCaptureCreated      = "net.authorize.payment.authcapture.created"
	EventAuthorizationCreated    = "net.authorize.payment.authorization.created"
	EventCaptureCreated          = "net.authorize.payment.capture.created"
	EventPriorAuthCaptureCreated = "net.authorize.payment.priorAuthCapture.created"
	EventRefundCreated           = "net.authorize.payment.refund.created"
	EventVoidCreated             = "net.authorize.payment.void.created"
	EventFraudHeld               = "net.authorize.payment.fraud.held"
	EventFraudApproved           = "net.authorize.payment.fraud.approved"
	EventFraudDeclined           = "net.authorize.payment.fraud.declined"
	EventCustomerCreated         = "net.authorize.customer.created"
	EventCustomerUpdated         = "net.authorize.customer.updated"
	EventCustomerDeleted         = "net.authorize.customer.deleted"
	EventPaymentProfileCreated   = "net.authorize.customer.paymentProfile.created"
	EventPaymentProfileUpdated   = "net.authorize.customer.paymentProfile.updated"
	EventPaymentProfileDeleted   = "net.authorize.customer.paymentProfile.deleted"
)

var knownEventTypes = map[string]bool{
	EventAuthCaptureCreated:      true,
	EventAuthorizationCreated:    true,
	EventCaptureCreated:          true,
	EventPriorAuthCaptureCreated: true,
	EventRefundCreated:           true,
	EventVoidCreated:             true,
	EventFraudHeld:               true,
	EventFraudApproved:           true,
	EventFraudDeclined:           true,
	EventCustomerCreated:         true,
	EventCustomerUpdated:         true,
	EventCustomerDeleted:         true,
	EventPaymentProfileCreated:   true,
	EventPaymentProfileUpdated:   true,
	EventPaymentProfileDeleted:   true,
}

const entityTransaction = "transaction"

type WebhookPayload struct {
	EntityName   string          `json:"entityName"`
	ID           string          `json:"id"`
	ResponseCode int             `json:"responseCode"`
	AuthAmount   decimal.Decimal `json:"authAmount"`
}

type WebhookEvent struct {
	NotificationID string         `json:"notificationId"`
	EventType      string         `json:"eventType"`
	EventDate      string         `json:"eventDate"`
	WebhookID      string         `json:"webhookId"`
	Payload        WebhookPayload `json:"payload"`
}

// ParseWebhookEvent decodes a verified webhook body.
func ParseWebhookEvent(rawBody []byte) (WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: error unmarshaling webhook body: %v", ErrBadEvent, err)
	}
	if event.EventType == "" {
		return WebhookEvent{}, fmt.Errorf("%w: eventType not found in webhook body", ErrBadEvent)
	}
	return event, nil
}

// HandleWebhook verifies, parses and dispatches one webhook delivery. The signature is
// checked before the body is parsed.
func (s *serviceImpl) HandleWebhook(ctx context.Context, rawBody []byte, signatureHeader string) error {
	if !s.VerifyWebhookSignature(rawBody, signatureHeader) {
		return ErrInvalidSignature
	}
	event, err := ParseWebhookEvent(rawBody)
	if err != nil {
		return err
	}
	return s.DispatchWebhookEvent(ctx, event)
}

// DispatchWebhookEvent routes an event to its handler. Unknown and unhandled event
// types are logged and acknowledged.
func (s *serviceImpl) DispatchWebhookEvent(ctx context.Context, event WebhookEvent) error {
	switch event.EventType {
	case EventAuthCaptureCreated:
		return s.handleAuthCaptureCreated(ctx, event.Payload)
	default:
		if knownEventTypes[event.EventType] {
			slog.Info("webhook event acknowledged without handler", "event_type", event.EventType, "notification_id", event.NotificationID)
		} else {
			slog.Info("unhandled webhook event type", "event_type", event.EventType, "notification_id", event.NotificationID)
		}
		return nil
	}
}

// handleAuthCaptureCreated reconciles a captured payment with the local user that owns
// the customer profile. Each transaction id is claimed first so repeated deliveries are
// no-ops; a failure after the claim releases it so the next delivery retries.
func (s *serviceImpl) handleAuthCaptureCreated(ctx context.Context, payload WebhookPayload) (err error) {
	if payload.EntityName != entityTransaction {
		return nil
	}
	if payload.ID == "" {
		return fmt.Errorf("%w: transaction id not found in payload", ErrBadEvent)
	}
	transactionID := payload.ID

	claimed, err := s.claims.Claim(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("%w: error claiming transaction %s: %v", ErrDatabase, transactionID, err)
	}
	if !claimed {
		slog.Info("webhook transaction already handled", "transaction_id", transactionID)
		return nil
	}
	defer func() {
		if err == nil {
			return
		}
		if relErr := s.claims.Release(context.WithoutCancel(ctx), transactionID); relErr != nil {
			slog.Error("failed to release webhook claim", "transaction_id", transactionID, "err", relErr)
		}
	}()

	txn, err := s.GetTransactionDetails(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.CustomerProfileID == "" {
		slog.Info("webhook transaction not tied to a customer profile", "transaction_id", transactionID)
		return nil
	}

	user, found, err := s.users.FindUserByCustomerProfileID(ctx, txn.CustomerProfileID)
	if err != nil {
		if errors.Is(err, ErrDatabase) {
			return err
		}
		return fmt.Errorf("%w: error finding user: %v", ErrDatabase, err)
	}
	if !found {
		slog.Info("no local user for customer profile", "transaction_id", transactionID, "customer_profile_id", txn.CustomerProfileID)
		return nil
	}

	marker, ok := s.matchMarker(txn.Description)
	if !ok {
		slog.Info("webhook transaction has no reconcile marker", "transaction_id", transactionID, "user_id", user.ID)
		return nil
	}
	slog.Info("reconciling payment", "transaction_id", transactionID, "user_id", user.ID, "marker", marker)
	return s.reconciler.ReconcilePayment(ctx, user, txn, marker)
}

func (s *serviceImpl) matchMarker(description string) (string, bool) {
	if description == "" {
		return "", false
	}
	for _, m := range s.markers {
		if strings.Contains(description, m) {
			return m, true
		}
	}
	return "", false
}
