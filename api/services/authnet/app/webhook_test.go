package app

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authCaptureBody = `{"notificationId":"d0e8e7fe-c3e7-4add-a480-27bc5ce28a18","eventType":"net.authorize.payment.authcapture.created",
"eventDate":"2024-03-05T17:02:11.857Z","webhookId":"63d6fea2-aa13-4b1d-a204-f5fbc15942b7",
"payload":{"responseCode":1,"authCode":"LZ6I19","avsResponse":"Y","authAmount":25.99,"entityName":"transaction","id":"60012345678"}}`

var webhookUser = User{ID: "user-42", Email: "payer@example.com", CustomerProfileID: "900100"}

type webhookFixture struct {
	svc        *serviceImpl
	exec       *fakeExecutor
	users      *MockUserStore
	claims     *MockTransactionClaimer
	reconciler *MockReconciler
}

func newWebhookFixture(t *testing.T, description string) webhookFixture {
	ctrl := gomock.NewController(t)
	f := webhookFixture{
		exec: newFakeExecutor().respond("getTransactionDetailsRequest",
			detailsBody("60012345678", "2024-03-05T17:02:11.857Z", 1, "25.99", description)),
		users:      NewMockUserStore(ctrl),
		claims:     NewMockTransactionClaimer(ctrl),
		reconciler: NewMockReconciler(ctrl),
	}
	f.svc = newTestService(f.exec, Dependencies{
		Users:      f.users,
		Claims:     f.claims,
		Reconciler: f.reconciler,
		Markers:    []string{"Pro plan"},
	})
	return f
}

func signed(body string) ([]byte, string) {
	raw := []byte(body)
	return raw, computeSignature([]byte(testSignatureKey), raw)
}

func Test_HandleWebhook_ReconcilesOnce(t *testing.T) {
	f := newWebhookFixture(t, "Pro plan - monthly")
	ctx := context.Background()
	raw, sig := signed(authCaptureBody)

	gomock.InOrder(
		f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil),
		f.users.EXPECT().FindUserByCustomerProfileID(gomock.Any(), "900100").Return(webhookUser, true, nil),
		f.reconciler.EXPECT().ReconcilePayment(gomock.Any(), webhookUser, gomock.Any(), "Pro plan").
			DoAndReturn(func(_ context.Context, _ User, txn TransactionRecord, _ string) error {
				assert.Equal(t, "60012345678", txn.ID)
				assert.Equal(t, int64(2599), txn.AuthAmountMinorUnits)
				return nil
			}),
		f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(false, nil),
	)

	require.NoError(t, f.svc.HandleWebhook(ctx, raw, sig))
	require.NoError(t, f.svc.HandleWebhook(ctx, raw, sig))
	assert.Len(t, f.exec.requestsNamed("getTransactionDetailsRequest"), 1)
}

func Test_HandleWebhook_ReleasesClaimOnReconcileFailure(t *testing.T) {
	f := newWebhookFixture(t, "Pro plan - monthly")
	raw, sig := signed(authCaptureBody)
	boom := errors.New("ledger unavailable")

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil)
	f.users.EXPECT().FindUserByCustomerProfileID(gomock.Any(), "900100").Return(webhookUser, true, nil)
	f.reconciler.EXPECT().ReconcilePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
	f.claims.EXPECT().Release(gomock.Any(), "60012345678").Return(nil)

	err := f.svc.HandleWebhook(context.Background(), raw, sig)
	assert.ErrorIs(t, err, boom)
}

func Test_HandleWebhook_ReleasesClaimOnGatewayFailure(t *testing.T) {
	f := newWebhookFixture(t, "")
	f.exec.responses["getTransactionDetailsRequest"] = []string{`{` + errMessages("E00040", "The record cannot be found.") + `}`}
	raw, sig := signed(authCaptureBody)

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil)
	f.claims.EXPECT().Release(gomock.Any(), "60012345678").Return(nil)

	err := f.svc.HandleWebhook(context.Background(), raw, sig)
	assert.ErrorIs(t, err, ErrGateway)
}

func Test_HandleWebhook_ClaimErrorIsDatabaseError(t *testing.T) {
	f := newWebhookFixture(t, "Pro plan - monthly")
	raw, sig := signed(authCaptureBody)

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(false, errors.New("redis down"))

	err := f.svc.HandleWebhook(context.Background(), raw, sig)
	assert.ErrorIs(t, err, ErrDatabase)
	assert.Empty(t, f.exec.requestsNamed("getTransactionDetailsRequest"))
}

func Test_HandleWebhook_UserNotFoundIsIgnored(t *testing.T) {
	f := newWebhookFixture(t, "Pro plan - monthly")
	raw, sig := signed(authCaptureBody)

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil)
	f.users.EXPECT().FindUserByCustomerProfileID(gomock.Any(), "900100").Return(User{}, false, nil)

	assert.NoError(t, f.svc.HandleWebhook(context.Background(), raw, sig))
}

func Test_HandleWebhook_UserLookupFailureReleases(t *testing.T) {
	f := newWebhookFixture(t, "Pro plan - monthly")
	raw, sig := signed(authCaptureBody)

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil)
	f.users.EXPECT().FindUserByCustomerProfileID(gomock.Any(), "900100").Return(User{}, false, errors.New("conn refused"))
	f.claims.EXPECT().Release(gomock.Any(), "60012345678").Return(nil)

	assert.ErrorIs(t, f.svc.HandleWebhook(context.Background(), raw, sig), ErrDatabase)
}

func Test_HandleWebhook_NoMarkerSkipsReconcile(t *testing.T) {
	f := newWebhookFixture(t, "One-off donation")
	raw, sig := signed(authCaptureBody)

	f.claims.EXPECT().Claim(gomock.Any(), "60012345678").Return(true, nil)
	f.users.EXPECT().FindUserByCustomerProfileID(gomock.Any(), "900100").Return(webhookUser, true, nil)

	assert.NoError(t, f.svc.HandleWebhook(context.Background(), raw, sig))
}

func Test_HandleWebhook_UnknownEventAcknowledged(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(`{"notificationId":"n-2","eventType":"net.authorize.something.new","payload":{"id":"1"}}`)

	assert.NoError(t, f.svc.HandleWebhook(context.Background(), raw, sig))
	assert.Empty(t, f.exec.requests)
}

func Test_HandleWebhook_OtherPaymentEventAcknowledged(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(`{"notificationId":"n-3","eventType":"net.authorize.payment.refund.created","payload":{"entityName":"transaction","id":"1"}}`)

	assert.NoError(t, f.svc.HandleWebhook(context.Background(), raw, sig))
	assert.Empty(t, f.exec.requests)
}

func Test_HandleWebhook_NonTransactionEntityIgnored(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(`{"notificationId":"n-4","eventType":"net.authorize.payment.authcapture.created","payload":{"entityName":"customerProfile","id":"1"}}`)

	assert.NoError(t, f.svc.HandleWebhook(context.Background(), raw, sig))
}

func Test_HandleWebhook_MissingTransactionID(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(`{"notificationId":"n-5","eventType":"net.authorize.payment.authcapture.created","payload":{"entityName":"transaction"}}`)

	assert.ErrorIs(t, f.svc.HandleWebhook(context.Background(), raw, sig), ErrBadEvent)
}

func Test_HandleWebhook_InvalidSignature(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(authCaptureBody)
	raw[len(raw)-2] = ' '

	assert.ErrorIs(t, f.svc.HandleWebhook(context.Background(), raw, sig), ErrInvalidSignature)
	assert.Empty(t, f.exec.requests)
}

func Test_HandleWebhook_MalformedBody(t *testing.T) {
	f := newWebhookFixture(t, "")
	raw, sig := signed(`{"eventType":`)

	assert.ErrorIs(t, f.svc.HandleWebhook(context.Background(), raw, sig), ErrBadEvent)
}

func Test_ParseWebhookEvent(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(authCaptureBody))
	require.NoError(t, err)
	assert.Equal(t, EventAuthCaptureCreated, event.EventType)
	assert.Equal(t, "60012345678", event.Payload.ID)
	assert.Equal(t, "transaction", event.Payload.EntityName)
	assert.Equal(t, 1, event.Payload.ResponseCode)
	assert.Equal(t, "25.99", event.Payload.AuthAmount.String())

	_, err = ParseWebhookEvent([]byte(`{"notificationId":"n"}`))
	assert.ErrorIs(t, err, ErrBadEvent)
}
