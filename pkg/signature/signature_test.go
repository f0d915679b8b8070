package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testOrderID   = "order_ABC"
	testPaymentID = "pay_XYZ"
	testSecret    = "s3cr3t"
)

func TestSign(t *testing.T) {
	sig := Sign(testOrderID, testPaymentID, testSecret)

	assert.Len(t, sig, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, sig)
	assert.Equal(t, sig, Sign(testOrderID, testPaymentID, testSecret))
	assert.NotEqual(t, sig, Sign(testOrderID, testPaymentID, "other"))
	assert.NotEqual(t, sig, Sign(testPaymentID, testOrderID, testSecret))
}

func TestVerify(t *testing.T) {
	sig := Sign(testOrderID, testPaymentID, testSecret)

	t.Run("success: matching signature", func(t *testing.T) {
		assert.True(t, Verify(testOrderID, testPaymentID, sig, testSecret))
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		assert.False(t, Verify(testOrderID, testPaymentID, sig, "wrong"))
	})

	t.Run("error: empty signature", func(t *testing.T) {
		assert.False(t, Verify(testOrderID, testPaymentID, "", testSecret))
	})

	t.Run("error: length mismatch", func(t *testing.T) {
		assert.False(t, Verify(testOrderID, testPaymentID, sig[:63], testSecret))
		assert.False(t, Verify(testOrderID, testPaymentID, sig+"0", testSecret))
	})

	t.Run("error: uppercase hex is a different string", func(t *testing.T) {
		upper := []byte(sig)
		for i, c := range upper {
			if c >= 'a' && c <= 'f' {
				upper[i] = c - 'a' + 'A'
			}
		}

		if string(upper) != sig {
			assert.False(t, Verify(testOrderID, testPaymentID, string(upper), testSecret))
		}
	})

	t.Run("error: any single character flipped", func(t *testing.T) {
		for i := range sig {
			b := []byte(sig)
			if b[i] == '0' {
				b[i] = '1'
			} else {
				b[i] = '0'
			}

			assert.False(t, Verify(testOrderID, testPaymentID, string(b), testSecret), "position %d", i)
		}
	})
}
