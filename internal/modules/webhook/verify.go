package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader is the header Shopify signs webhook deliveries with.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

// VerifySignature checks the base64 HMAC-SHA256 of the raw body against the
// header value in constant time.
func VerifySignature(secret, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}

// Sign computes the base64 HMAC-SHA256 digest Shopify would send.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
