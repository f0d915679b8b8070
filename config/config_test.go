package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("error: missing required variables", func(t *testing.T) {
		t.Setenv("APP_NAME", "")
		t.Setenv("RAZORPAY_KEY_ID", "")

		_, err := New()

		assert.Error(t, err)
	})

	t.Run("success: defaults applied", func(t *testing.T) {
		t.Setenv("APP_NAME", "culturepay")
		t.Setenv("APP_VERSION", "1.0.0")
		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "secret")
		t.Setenv("LEDGER_DRIVER", "")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.Razorpay.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Ledger.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 300, cfg.Cache.Duration)
		assert.False(t, cfg.Redis.Enabled)
		assert.False(t, cfg.Mail.Enabled)
	})
}
