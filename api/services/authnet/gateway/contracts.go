package gateway

import "github.com/shopspring/decimal"

// The Authorize.Net JSON API is generated from an XML schema and rejects elements that
// appear out of schema order, so struct field order below is significant.

type MerchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type Message struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type Messages struct {
	ResultCode string    `json:"resultCode"`
	Message    []Message `json:"message"`
}

// First returns the first message or a zero Message.
func (m Messages) First() Message {
	if len(m.Message) == 0 {
		return Message{}
	}
	return m.Message[0]
}

// ResponseBase is embedded by every response envelope.
type ResponseBase struct {
	RefID    string   `json:"refId,omitempty"`
	Messages Messages `json:"messages"`
}

func (r ResponseBase) Envelope() ResponseBase { return r }

// OK reports whether the gateway accepted the request.
func (r ResponseBase) OK() bool { return r.Messages.ResultCode == ResultOK }

// ---- shared types ----

type OpaqueData struct {
	DataDescriptor string `json:"dataDescriptor"`
	DataValue      string `json:"dataValue"`
}

type Payment struct {
	OpaqueData *OpaqueData `json:"opaqueData,omitempty"`
}

type CreditCardMasked struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CardType       string `json:"cardType"`
}

type PaymentMasked struct {
	CreditCard *CreditCardMasked `json:"creditCard,omitempty"`
}

type CustomerAddress struct {
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	Company           string `json:"company,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Zip               string `json:"zip,omitempty"`
	Country           string `json:"country,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	FaxNumber         string `json:"faxNumber,omitempty"`
	Email             string `json:"email,omitempty"`
	CustomerAddressID string `json:"customerAddressId,omitempty"`
}

type CustomerPaymentProfile struct {
	CustomerType          string           `json:"customerType,omitempty"`
	BillTo                *CustomerAddress `json:"billTo,omitempty"`
	Payment               *Payment         `json:"payment,omitempty"`
	DefaultPaymentProfile bool             `json:"defaultPaymentProfile,omitempty"`
}

type CustomerPaymentProfileMasked struct {
	CustomerProfileID        string           `json:"customerProfileId,omitempty"`
	CustomerPaymentProfileID string           `json:"customerPaymentProfileId"`
	DefaultPaymentProfile    bool             `json:"defaultPaymentProfile,omitempty"`
	Payment                  *PaymentMasked   `json:"payment,omitempty"`
	CustomerType             string           `json:"customerType,omitempty"`
	BillTo                   *CustomerAddress `json:"billTo,omitempty"`
}

type CustomerProfileMasked struct {
	ProfileType        string                         `json:"profileType,omitempty"`
	CustomerProfileID  string                         `json:"customerProfileId"`
	MerchantCustomerID string                         `json:"merchantCustomerId,omitempty"`
	Description        string                         `json:"description,omitempty"`
	Email              string                         `json:"email,omitempty"`
	PaymentProfiles    []CustomerPaymentProfileMasked `json:"paymentProfiles,omitempty"`
	ShipToList         []CustomerAddress              `json:"shipToList,omitempty"`
}

type ProfileReference struct {
	CustomerProfileID        string `json:"customerProfileId"`
	CustomerPaymentProfileID string `json:"customerPaymentProfileId,omitempty"`
}

type Order struct {
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Description   string `json:"description,omitempty"`
}

type CustomerData struct {
	Type  string `json:"type,omitempty"`
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type Setting struct {
	SettingName  string `json:"settingName"`
	SettingValue string `json:"settingValue"`
}

type Settings struct {
	Setting []Setting `json:"setting"`
}

type UserField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UserFields struct {
	UserField []UserField `json:"userField"`
}

// ---- createCustomerProfile ----

type CustomerProfile struct {
	MerchantCustomerID string `json:"merchantCustomerId,omitempty"`
	Description        string `json:"description,omitempty"`
	Email              string `json:"email,omitempty"`
}

type CreateCustomerProfileRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	Profile                CustomerProfile        `json:"profile"`
}

func (CreateCustomerProfileRequest) RequestName() string { return "createCustomerProfileRequest" }

type CreateCustomerProfileResponse struct {
	ResponseBase
	CustomerProfileID string `json:"customerProfileId"`
}

// ---- createCustomerPaymentProfile ----

type CreateCustomerPaymentProfileRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	CustomerProfileID      string                 `json:"customerProfileId"`
	PaymentProfile         CustomerPaymentProfile `json:"paymentProfile"`
	ValidationMode         string                 `json:"validationMode"`
}

func (CreateCustomerPaymentProfileRequest) RequestName() string {
	return "createCustomerPaymentProfileRequest"
}

type CreateCustomerPaymentProfileResponse struct {
	ResponseBase
	CustomerProfileID        string `json:"customerProfileId"`
	CustomerPaymentProfileID string `json:"customerPaymentProfileId"`
}

// ---- createTransaction ----

type TransactionRequest struct {
	TransactionType     string            `json:"transactionType"`
	Amount              string            `json:"amount"`
	CurrencyCode        string            `json:"currencyCode,omitempty"`
	Profile             *ProfileReference `json:"profile,omitempty"`
	Order               *Order            `json:"order,omitempty"`
	Customer            *CustomerData     `json:"customer,omitempty"`
	TransactionSettings *Settings         `json:"transactionSettings,omitempty"`
	UserFields          *UserFields       `json:"userFields,omitempty"`
}

type CreateTransactionRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	TransactionRequest     TransactionRequest     `json:"transactionRequest"`
}

func (CreateTransactionRequest) RequestName() string { return "createTransactionRequest" }

type TransactionMessage struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type TransactionError struct {
	ErrorCode string `json:"errorCode"`
	ErrorText string `json:"errorText"`
}

type TransactionResponse struct {
	ResponseCode string               `json:"responseCode"`
	AuthCode     string               `json:"authCode,omitempty"`
	TransID      string               `json:"transId"`
	Messages     []TransactionMessage `json:"messages,omitempty"`
	Errors       []TransactionError   `json:"errors,omitempty"`
}

type CreateTransactionResponse struct {
	ResponseBase
	TransactionResponse *TransactionResponse `json:"transactionResponse,omitempty"`
}

// TransactionErrors exposes per-transaction errors to response validation.
func (r CreateTransactionResponse) TransactionErrors() []TransactionError {
	if r.TransactionResponse == nil {
		return nil
	}
	return r.TransactionResponse.Errors
}

// ---- getTransactionDetails ----

type GetTransactionDetailsRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	TransID                string                 `json:"transId"`
}

func (GetTransactionDetailsRequest) RequestName() string { return "getTransactionDetailsRequest" }

type TransactionDetails struct {
	TransID           string            `json:"transId"`
	SubmitTimeUTC     string            `json:"submitTimeUTC"`
	TransactionType   string            `json:"transactionType"`
	TransactionStatus string            `json:"transactionStatus"`
	ResponseCode      int               `json:"responseCode"`
	AuthAmount        decimal.Decimal   `json:"authAmount"`
	SettleAmount      decimal.Decimal   `json:"settleAmount"`
	Order             *Order            `json:"order,omitempty"`
	Profile           *ProfileReference `json:"profile,omitempty"`
	Customer          *CustomerData     `json:"customer,omitempty"`
}

type GetTransactionDetailsResponse struct {
	ResponseBase
	Transaction TransactionDetails `json:"transaction"`
}

// ---- getCustomerProfile ----

type GetCustomerProfileRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	CustomerProfileID      string                 `json:"customerProfileId"`
	UnmaskExpirationDate   bool                   `json:"unmaskExpirationDate,omitempty"`
}

func (GetCustomerProfileRequest) RequestName() string { return "getCustomerProfileRequest" }

type GetCustomerProfileResponse struct {
	ResponseBase
	Profile CustomerProfileMasked `json:"profile"`
}

// ---- getCustomerPaymentProfile ----

type GetCustomerPaymentProfileRequest struct {
	MerchantAuthentication   MerchantAuthentication `json:"merchantAuthentication"`
	CustomerProfileID        string                 `json:"customerProfileId"`
	CustomerPaymentProfileID string                 `json:"customerPaymentProfileId"`
	UnmaskExpirationDate     bool                   `json:"unmaskExpirationDate,omitempty"`
}

func (GetCustomerPaymentProfileRequest) RequestName() string {
	return "getCustomerPaymentProfileRequest"
}

type GetCustomerPaymentProfileResponse struct {
	ResponseBase
	PaymentProfile CustomerPaymentProfileMasked `json:"paymentProfile"`
}

// ---- updateCustomerProfile ----

type CustomerProfileEx struct {
	MerchantCustomerID string `json:"merchantCustomerId,omitempty"`
	Description        string `json:"description,omitempty"`
	Email              string `json:"email,omitempty"`
	CustomerProfileID  string `json:"customerProfileId"`
}

type UpdateCustomerProfileRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	Profile                CustomerProfileEx      `json:"profile"`
}

func (UpdateCustomerProfileRequest) RequestName() string { return "updateCustomerProfileRequest" }

type UpdateCustomerProfileResponse struct {
	ResponseBase
}

// ---- create/updateCustomerShippingAddress ----

type CreateCustomerShippingAddressRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	CustomerProfileID      string                 `json:"customerProfileId"`
	Address                CustomerAddress        `json:"address"`
}

func (CreateCustomerShippingAddressRequest) RequestName() string {
	return "createCustomerShippingAddressRequest"
}

type CreateCustomerShippingAddressResponse struct {
	ResponseBase
	CustomerProfileID string `json:"customerProfileId"`
	CustomerAddressID string `json:"customerAddressId"`
}

type UpdateCustomerShippingAddressRequest struct {
	MerchantAuthentication MerchantAuthentication `json:"merchantAuthentication"`
	CustomerProfileID      string                 `json:"customerProfileId"`
	Address                CustomerAddress        `json:"address"`
}

func (UpdateCustomerShippingAddressRequest) RequestName() string {
	return "updateCustomerShippingAddressRequest"
}

type UpdateCustomerShippingAddressResponse struct {
	ResponseBase
}

// ---- getTransactionListForCustomer ----

type TransactionListSorting struct {
	OrderBy         string `json:"orderBy"`
	OrderDescending bool   `json:"orderDescending"`
}

type GetTransactionListForCustomerRequest struct {
	MerchantAuthentication MerchantAuthentication  `json:"merchantAuthentication"`
	CustomerProfileID      string                  `json:"customerProfileId"`
	Sorting                *TransactionListSorting `json:"sorting,omitempty"`
}

func (GetTransactionListForCustomerRequest) RequestName() string {
	return "getTransactionListForCustomerRequest"
}

type TransactionSummary struct {
	TransID           string            `json:"transId"`
	SubmitTimeUTC     string            `json:"submitTimeUTC"`
	TransactionStatus string            `json:"transactionStatus"`
	InvoiceNumber     string            `json:"invoiceNumber,omitempty"`
	AccountType       string            `json:"accountType,omitempty"`
	AccountNumber     string            `json:"accountNumber,omitempty"`
	SettleAmount      decimal.Decimal   `json:"settleAmount"`
	Profile           *ProfileReference `json:"profile,omitempty"`
}

type GetTransactionListResponse struct {
	ResponseBase
	Transactions        []TransactionSummary `json:"transactions"`
	TotalNumInResultSet int                  `json:"totalNumInResultSet"`
}
