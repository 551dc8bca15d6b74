package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignatureAcceptsOwnSignature(t *testing.T) {
	secret := []byte("shpss_test")
	body := []byte(`{"id":1}`)

	assert.True(t, VerifySignature(secret, body, Sign(secret, body)))
}

func TestVerifySignatureRejectsTamperedBody(t *testing.T) {
	secret := []byte("shpss_test")
	sig := Sign(secret, []byte(`{"id":1}`))

	assert.False(t, VerifySignature(secret, []byte(`{"id":2}`), sig))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"id":1}`)
	sig := Sign([]byte("other-secret"), body)

	assert.False(t, VerifySignature([]byte("shpss_test"), body, sig))
}

func TestVerifySignatureRejectsGarbage(t *testing.T) {
	assert.False(t, VerifySignature([]byte("shpss_test"), []byte(`{}`), ""))
	assert.False(t, VerifySignature([]byte("shpss_test"), []byte(`{}`), "not base64!!"))
}
