package app

import (
	"context"
	"fmt"
	"log/slog"
)

// Checkout runs the purchase flow: make sure the user has a customer profile (creating
// and persisting it on first use), attach the submitted card as the default payment
// profile, then charge it. A zero amount skips the charge and returns an approved result
// without a transaction id.
func (s *serviceImpl) Checkout(ctx context.Context, req CheckoutRequest) (ChargeResult, error) {
	user := req.User
	if user.CustomerProfileID == "" {
		profileID, err := s.CreateCustomerProfile(ctx, user)
		if err != nil {
			return ChargeResult{}, err
		}
		if err := s.users.SetCustomerProfileID(ctx, user.ID, profileID); err != nil {
			return ChargeResult{}, fmt.Errorf("%w: error saving customer profile id: %v", ErrDatabase, err)
		}
		user.CustomerProfileID = profileID
	}

	if _, err := s.attachPaymentMethod(ctx, user, req.PaymentMethod); err != nil {
		return ChargeResult{}, err
	}

	if req.AmountMinorUnits == 0 {
		return ChargeResult{Approved: true}, nil
	}

	result, err := s.ChargeCustomerProfile(ctx, ChargeRequest{
		CustomerProfileID: user.CustomerProfileID,
		AmountMinorUnits:  req.AmountMinorUnits,
		User:              user,
		Description:       req.Description,
	})
	if err != nil {
		return ChargeResult{}, err
	}
	if !result.Approved {
		slog.Log(ctx, result.Failure.Level.SlogLevel(), result.Failure.Message,
			"user_id", user.ID,
			"code", result.Failure.Code)
	}
	return result, nil
}

// UpdateBillingInfo replaces the user's default card. Each call adds a payment profile,
// so a user who changes cards often eventually gets ErrPaymentProfileLimit.
func (s *serviceImpl) UpdateBillingInfo(ctx context.Context, user User, method PaymentMethodInput) (string, error) {
	if user.CustomerProfileID == "" {
		return "", ErrNoCustomerProfile
	}
	return s.attachPaymentMethod(ctx, user, method)
}

// attachPaymentMethod creates a payment profile while holding the per-customer lock, so
// this process never races itself for the same customer profile.
func (s *serviceImpl) attachPaymentMethod(ctx context.Context, user User, method PaymentMethodInput) (string, error) {
	unlock := s.profileLocks.Lock(user.CustomerProfileID)
	defer unlock()

	return s.CreatePaymentProfile(ctx, PaymentProfileInput{
		CustomerProfileID: user.CustomerProfileID,
		OpaqueData:        method.OpaqueData,
		User:              user,
		BillingAddress:    method.BillingAddress,
	})
}
