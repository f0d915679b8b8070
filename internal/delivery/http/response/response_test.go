package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))

	return resp.StatusCode, out
}

func TestWithError(t *testing.T) {
	t.Run("success: failure with details", func(t *testing.T) {
		code, body := call(t, func(c *fiber.Ctx) error {
			return WithError(c, failure.InternalErrorWithDetails("Failed to create order", errors.New("timeout")))
		})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, map[string]interface{}{"error": "Failed to create order", "details": "timeout"}, body)
	})

	t.Run("success: plain error is internal", func(t *testing.T) {
		code, body := call(t, func(c *fiber.Ctx) error {
			return WithError(c, errors.New("boom"))
		})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, map[string]interface{}{"error": "boom"}, body)
	})
}

func TestWithUnsuccessful(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return WithUnsuccessful(c, failure.BadRequestFromString("Invalid signature"))
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Invalid signature"}, body)
}

func TestWithJSONAndPayload(t *testing.T) {
	_, wrapped := call(t, func(c *fiber.Ctx) error {
		return WithJSON(c, http.StatusOK, map[string]string{"a": "b"})
	})

	assert.Equal(t, map[string]interface{}{"data": map[string]interface{}{"a": "b"}}, wrapped)

	_, raw := call(t, func(c *fiber.Ctx) error {
		return WithPayload(c, http.StatusOK, map[string]string{"a": "b"})
	})

	assert.Equal(t, map[string]interface{}{"a": "b"}, raw)
}
