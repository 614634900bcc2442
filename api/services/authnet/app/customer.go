package app

import (
	"context"
	"log/slog"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

// CreateCustomerProfile creates the gateway billing identity for a user, tagged with the
// user id as description. If the gateway reports the identity already exists, the
// existing profile id is returned instead, so repeated calls yield the same id.
func (s *serviceImpl) CreateCustomerProfile(ctx context.Context, user User) (string, error) {
	req := gw.CreateCustomerProfileRequest{
		MerchantAuthentication: s.auth(),
		Profile: gw.CustomerProfile{
			Description: user.ID,
			Email:       user.Email,
		},
	}
	var resp gw.CreateCustomerProfileResponse
	if err := s.execute(ctx, req, &resp); err != nil {
		return "", err
	}

	if !resp.OK() {
		msg := resp.Messages.First()
		if msg.Code == gw.CodeDuplicateRecord {
			if id, ok := extractDuplicateProfileID(msg.Text); ok {
				slog.Info("customer profile already exists, reusing", "user_id", user.ID, "customer_profile_id", id)
				return id, nil
			}
		}
	}
	if err := checkResponse(req.RequestName(), &resp); err != nil {
		return "", err
	}
	return resp.CustomerProfileID, nil
}

// GetCustomerProfile loads a customer profile with its payment profiles (expiration
// dates unmasked) and shipping addresses.
func (s *serviceImpl) GetCustomerProfile(ctx context.Context, customerProfileID string) (CustomerProfile, error) {
	req := gw.GetCustomerProfileRequest{
		MerchantAuthentication: s.auth(),
		CustomerProfileID:      customerProfileID,
		UnmaskExpirationDate:   true,
	}
	var resp gw.GetCustomerProfileResponse
	if err := s.call(ctx, req, &resp); err != nil {
		return CustomerProfile{}, err
	}

	p := resp.Profile
	profile := CustomerProfile{
		ID:          p.CustomerProfileID,
		Description: p.Description,
		Email:       p.Email,
	}
	if profile.ID == "" {
		profile.ID = customerProfileID
	}
	for _, pp := range p.PaymentProfiles {
		profile.PaymentProfiles = append(profile.PaymentProfiles, toPaymentProfile(profile.ID, pp))
	}
	for _, a := range p.ShipToList {
		profile.ShippingAddresses = append(profile.ShippingAddresses, ShippingAddress{
			ID:      a.CustomerAddressID,
			Address: fromGatewayAddress(a),
		})
	}
	return profile, nil
}

// UpdateCustomerProfile changes the email stored on the profile.
func (s *serviceImpl) UpdateCustomerProfile(ctx context.Context, customerProfileID, email string) error {
	req := gw.UpdateCustomerProfileRequest{
		MerchantAuthentication: s.auth(),
		Profile: gw.CustomerProfileEx{
			Email:             email,
			CustomerProfileID: customerProfileID,
		},
	}
	var resp gw.UpdateCustomerProfileResponse
	return s.call(ctx, req, &resp)
}

// UpdateShippingAddress replaces the first shipping address of the profile, or creates
// one when the profile has none. The read and the write are separate gateway calls, so
// concurrent updates for one profile must be serialized by the caller.
func (s *serviceImpl) UpdateShippingAddress(ctx context.Context, customerProfileID string, address Address) error {
	profile, err := s.GetCustomerProfile(ctx, customerProfileID)
	if err != nil {
		return err
	}

	addr := toGatewayAddress(address)
	if len(profile.ShippingAddresses) > 0 {
		addr.CustomerAddressID = profile.ShippingAddresses[0].ID
		req := gw.UpdateCustomerShippingAddressRequest{
			MerchantAuthentication: s.auth(),
			CustomerProfileID:      customerProfileID,
			Address:                addr,
		}
		var resp gw.UpdateCustomerShippingAddressResponse
		return s.call(ctx, req, &resp)
	}

	req := gw.CreateCustomerShippingAddressRequest{
		MerchantAuthentication: s.auth(),
		CustomerProfileID:      customerProfileID,
		Address:                addr,
	}
	var resp gw.CreateCustomerShippingAddressResponse
	return s.call(ctx, req, &resp)
}
