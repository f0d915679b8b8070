// Package signature verifies Razorpay checkout callbacks.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of "orderID|paymentID" keyed by secret.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether got matches the expected signature. The comparison is constant time.
func Verify(orderID, paymentID, got, secret string) bool {
	expected := Sign(orderID, paymentID, secret)

	return hmac.Equal([]byte(expected), []byte(got))
}
