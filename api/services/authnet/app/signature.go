package app

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the HMAC of a webhook body.
const SignatureHeader = "X-ANET-Signature"

const signaturePrefix = "sha512="

// computeSignature returns "sha512=<lower-case hex HMAC-SHA512(key, body)>".
func computeSignature(key, body []byte) string {
	mac := hmac.New(sha512.New, key)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks header against the HMAC of the raw body exactly as
// received. The gateway sends upper-case hex, so the header is compared lower-cased.
func (s *serviceImpl) VerifyWebhookSignature(rawBody []byte, signatureHeader string) bool {
	return verifySignature(s.signatureKey, rawBody, signatureHeader)
}

func verifySignature(key, rawBody []byte, signatureHeader string) bool {
	if len(key) == 0 || signatureHeader == "" {
		return false
	}
	expected := []byte(computeSignature(key, rawBody))
	got := []byte(strings.ToLower(strings.TrimSpace(signatureHeader)))
	// hmac.Equal is constant time and false on length mismatch.
	return hmac.Equal(expected, got)
}
