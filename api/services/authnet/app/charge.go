package app

import (
	"context"
	"fmt"
	"strconv"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

const (
	transactionTypeAuthCapture = "authCaptureTransaction"
	currencyUSD                = "USD"
	// Seconds during which the gateway treats an identical charge as an accidental duplicate.
	duplicateWindowSeconds = "300"
	userIDFieldName        = "User Id"
)

// ChargeCustomerProfile runs an authorize-and-capture against the default payment
// profile of a customer profile. Declines come back as a ChargeResult with a Failure;
// only transport problems and responses without any transaction block return an error.
func (s *serviceImpl) ChargeCustomerProfile(ctx context.Context, in ChargeRequest) (ChargeResult, error) {
	req := gw.CreateTransactionRequest{
		MerchantAuthentication: s.auth(),
		TransactionRequest: gw.TransactionRequest{
			TransactionType: transactionTypeAuthCapture,
			Amount:          toMajorUnits(in.AmountMinorUnits),
			CurrencyCode:    currencyUSD,
			Profile:         &gw.ProfileReference{CustomerProfileID: in.CustomerProfileID},
			Order:           &gw.Order{Description: in.Description},
			Customer:        &gw.CustomerData{Email: in.User.Email},
			TransactionSettings: &gw.Settings{Setting: []gw.Setting{
				{SettingName: "duplicateWindow", SettingValue: duplicateWindowSeconds},
			}},
			UserFields: &gw.UserFields{UserField: []gw.UserField{
				{Name: userIDFieldName, Value: in.User.ID},
			}},
		},
	}
	var resp gw.CreateTransactionResponse
	if err := s.execute(ctx, req, &resp); err != nil {
		return ChargeResult{}, err
	}
	return chargeOutcome(resp)
}

// chargeOutcome turns a createTransaction response into a ChargeResult.
func chargeOutcome(resp gw.CreateTransactionResponse) (ChargeResult, error) {
	tr := resp.TransactionResponse
	if tr == nil {
		// No transaction was attempted, e.g. authentication failed.
		if err := checkResponse("createTransactionRequest", resp); err != nil {
			return ChargeResult{}, err
		}
		return ChargeResult{}, fmt.Errorf("%w: createTransactionRequest: response has no transactionResponse", ErrGateway)
	}

	if resp.OK() && tr.ResponseCode == gw.TransactionApproved {
		return ChargeResult{Approved: true, TransactionID: tr.TransID}, nil
	}

	if len(tr.Errors) > 0 {
		return ChargeResult{Failure: classifyTransactionError(tr.Errors[0])}, nil
	}

	msg := resp.Messages.First()
	return ChargeResult{Failure: ChargeFailure{Code: msg.Code, Message: msg.Text, Level: LevelError}}, nil
}

func classifyTransactionError(e gw.TransactionError) ChargeFailure {
	if code, err := strconv.Atoi(e.ErrorCode); err == nil {
		if c, ok := Classify(code); ok {
			return ChargeFailure{Code: e.ErrorCode, Message: c.Message, Level: c.Level}
		}
	}
	return ChargeFailure{Code: e.ErrorCode, Message: e.ErrorText, Level: LevelError}
}
