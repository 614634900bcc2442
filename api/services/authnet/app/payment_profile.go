package app

import (
	"context"
	"fmt"
	"log/slog"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

const (
	customerTypeIndividual = "individual"
	validationModeNone     = "none"
)

// CreatePaymentProfile attaches a tokenized card to a customer profile and makes it the
// default instrument. Card-network validation is skipped.
//
// On a duplicate-record error the id carried by the response is returned; the gateway
// does not guarantee one, so it may be empty. Hitting the per-profile ceiling returns
// ErrPaymentProfileLimit.
func (s *serviceImpl) CreatePaymentProfile(ctx context.Context, in PaymentProfileInput) (string, error) {
	billTo := toGatewayAddress(in.BillingAddress)
	billTo.FirstName = in.User.FirstName
	billTo.LastName = in.User.LastName
	billTo.PhoneNumber = in.User.PhoneNumber
	billTo.Email = in.User.Email

	req := gw.CreateCustomerPaymentProfileRequest{
		MerchantAuthentication: s.auth(),
		CustomerProfileID:      in.CustomerProfileID,
		PaymentProfile: gw.CustomerPaymentProfile{
			CustomerType: customerTypeIndividual,
			BillTo:       &billTo,
			Payment: &gw.Payment{OpaqueData: &gw.OpaqueData{
				DataDescriptor: in.OpaqueData.DataDescriptor,
				DataValue:      in.OpaqueData.DataValue,
			}},
			DefaultPaymentProfile: true,
		},
		ValidationMode: validationModeNone,
	}
	var resp gw.CreateCustomerPaymentProfileResponse
	if err := s.execute(ctx, req, &resp); err != nil {
		return "", err
	}

	if !resp.OK() {
		msg := resp.Messages.First()
		switch msg.Code {
		case gw.CodeDuplicateRecord:
			if resp.CustomerPaymentProfileID == "" {
				slog.Warn("duplicate payment profile without id in response", "customer_profile_id", in.CustomerProfileID)
			}
			return resp.CustomerPaymentProfileID, nil
		case gw.CodeMaxPaymentProfiles:
			return "", fmt.Errorf("%w: customer profile %s already has %d payment profiles: %s",
				ErrPaymentProfileLimit, in.CustomerProfileID, gw.MaxPaymentProfiles, msg.Text)
		}
	}
	if err := checkResponse(req.RequestName(), &resp); err != nil {
		return "", err
	}
	return resp.CustomerPaymentProfileID, nil
}

// GetCustomerPaymentProfile loads one payment profile of a customer profile.
func (s *serviceImpl) GetCustomerPaymentProfile(ctx context.Context, customerProfileID, paymentProfileID string) (PaymentProfile, error) {
	req := gw.GetCustomerPaymentProfileRequest{
		MerchantAuthentication:   s.auth(),
		CustomerProfileID:        customerProfileID,
		CustomerPaymentProfileID: paymentProfileID,
		UnmaskExpirationDate:     true,
	}
	var resp gw.GetCustomerPaymentProfileResponse
	if err := s.call(ctx, req, &resp); err != nil {
		return PaymentProfile{}, err
	}
	return toPaymentProfile(customerProfileID, resp.PaymentProfile), nil
}

func toPaymentProfile(customerProfileID string, pp gw.CustomerPaymentProfileMasked) PaymentProfile {
	out := PaymentProfile{
		ID:                pp.CustomerPaymentProfileID,
		CustomerProfileID: customerProfileID,
		IsDefault:         pp.DefaultPaymentProfile,
	}
	if pp.CustomerProfileID != "" {
		out.CustomerProfileID = pp.CustomerProfileID
	}
	if pp.BillTo != nil {
		out.BillingAddress = fromGatewayAddress(*pp.BillTo)
	}
	if pp.Payment != nil && pp.Payment.CreditCard != nil {
		cc := pp.Payment.CreditCard
		out.Card = Card{Number: cc.CardNumber, Expiration: cc.ExpirationDate, Type: cc.CardType}
	}
	return out
}
