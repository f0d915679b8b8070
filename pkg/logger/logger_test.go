package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	t.Run("success: messages at or above the level are written", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter("warn", &buf)

		l.Info("hidden")
		l.Warn("service - payments - %s", "ledger not configured")
		l.Error(errors.New("boom"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"level":"warn"`)
		assert.Contains(t, out, "service - payments - ledger not configured")
		assert.Contains(t, out, `"level":"error"`)
		assert.Contains(t, out, "boom")
	})

	t.Run("success: unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter("verbose", &buf)

		l.Debug("debug line")
		l.Info("info line")

		assert.NotContains(t, buf.String(), "debug line")
		assert.Contains(t, buf.String(), "info line")
	})
}
