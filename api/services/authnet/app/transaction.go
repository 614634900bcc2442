package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

const orderBySubmitTime = "submitTimeUTC"

// responseCodeApproved is the numeric responseCode of an approved transaction in
// getTransactionDetails responses.
const responseCodeApproved = 1

// GetTransactionDetails loads one transaction.
func (s *serviceImpl) GetTransactionDetails(ctx context.Context, transactionID string) (TransactionRecord, error) {
	req := gw.GetTransactionDetailsRequest{
		MerchantAuthentication: s.auth(),
		TransID:                transactionID,
	}
	var resp gw.GetTransactionDetailsResponse
	if err := s.call(ctx, req, &resp); err != nil {
		return TransactionRecord{}, err
	}

	t := resp.Transaction
	submitted, err := parseGatewayTime(t.SubmitTimeUTC)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("%w: transaction %s: %v", ErrGateway, transactionID, err)
	}
	rec := TransactionRecord{
		ID:                     t.TransID,
		SubmitTimeUTC:          submitted,
		AuthAmountMinorUnits:   toMinorUnits(t.AuthAmount),
		SettleAmountMinorUnits: toMinorUnits(t.SettleAmount),
		ResponseCode:           t.ResponseCode,
		Status:                 t.TransactionStatus,
	}
	if t.Order != nil {
		rec.Description = t.Order.Description
	}
	if t.Profile != nil {
		rec.CustomerProfileID = t.Profile.CustomerProfileID
		rec.PaymentProfileID = t.Profile.CustomerPaymentProfileID
	}
	return rec, nil
}

// GetTransactionList returns the transactions of a customer profile, newest first.
func (s *serviceImpl) GetTransactionList(ctx context.Context, customerProfileID string) ([]TransactionRecord, error) {
	req := gw.GetTransactionListForCustomerRequest{
		MerchantAuthentication: s.auth(),
		CustomerProfileID:      customerProfileID,
		Sorting:                &gw.TransactionListSorting{OrderBy: orderBySubmitTime, OrderDescending: true},
	}
	var resp gw.GetTransactionListResponse
	if err := s.call(ctx, req, &resp); err != nil {
		return nil, err
	}

	records := make([]TransactionRecord, 0, len(resp.Transactions))
	for _, t := range resp.Transactions {
		submitted, err := parseGatewayTime(t.SubmitTimeUTC)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %s: %v", ErrGateway, t.TransID, err)
		}
		rec := TransactionRecord{
			ID:                     t.TransID,
			SubmitTimeUTC:          submitted,
			SettleAmountMinorUnits: toMinorUnits(t.SettleAmount),
			Status:                 t.TransactionStatus,
			CustomerProfileID:      customerProfileID,
		}
		if t.Profile != nil {
			rec.PaymentProfileID = t.Profile.CustomerPaymentProfileID
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SubmitTimeUTC.After(records[j].SubmitTimeUTC)
	})
	return records, nil
}

// GetPaymentDetails builds the payment history (approved transactions only) and the
// summary of the first stored card.
func (s *serviceImpl) GetPaymentDetails(ctx context.Context, customerProfileID string) (PaymentDetails, error) {
	var details PaymentDetails

	list, err := s.GetTransactionList(ctx, customerProfileID)
	if err != nil {
		return PaymentDetails{}, err
	}
	for _, item := range list {
		txn, err := s.GetTransactionDetails(ctx, item.ID)
		if err != nil {
			return PaymentDetails{}, err
		}
		if txn.ResponseCode != responseCodeApproved {
			continue
		}
		details.History = append(details.History, PaymentHistoryEntry{
			TransactionID:    txn.ID,
			Description:      txn.Description,
			Date:             txn.SubmitTimeUTC,
			AmountMinorUnits: txn.AuthAmountMinorUnits,
		})
	}

	profile, err := s.GetCustomerProfile(ctx, customerProfileID)
	if err != nil {
		return PaymentDetails{}, err
	}
	if len(profile.PaymentProfiles) > 0 {
		card := profile.PaymentProfiles[0].Card
		year, month := splitExpiration(card.Expiration)
		details.Method = CardSummary{
			Brand:    strings.ToLower(card.Type),
			ExpMonth: month,
			ExpYear:  year,
			Last4:    lastFour(card.Number),
		}
	}
	return details, nil
}
