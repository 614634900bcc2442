package gateway

// Environment selects the Authorize.Net endpoint.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// MerchantCredential identifies the merchant on every request.
type MerchantCredential struct {
	LoginID        string
	TransactionKey string
	Environment    Environment
}

// Authentication returns the merchantAuthentication block for this credential.
func (c MerchantCredential) Authentication() MerchantAuthentication {
	return MerchantAuthentication{Name: c.LoginID, TransactionKey: c.TransactionKey}
}

// CredentialProvider supplies the merchant credential attached to outbound requests.
type CredentialProvider interface {
	Credential() MerchantCredential
}

type staticCredentials struct{ cred MerchantCredential }

// StaticCredentials returns a provider that always yields cred. An empty environment
// means sandbox.
func StaticCredentials(cred MerchantCredential) CredentialProvider {
	if cred.Environment == "" {
		cred.Environment = Sandbox
	}
	return staticCredentials{cred: cred}
}

func (s staticCredentials) Credential() MerchantCredential { return s.cred }
