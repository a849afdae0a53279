//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func testAppWithError(err error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: Middleware,
	})
	app.Get("/", func(ctx *fiber.Ctx) error {
		return err
	})

	return app
}

func envelopeFromResponse(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()

	rawBody, err := io.ReadAll(body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rawBody, &envelope))

	return envelope
}

func TestMiddleware(t *testing.T) {
	t.Run("custom error with client message and detail", func(t *testing.T) {
		app := testAppWithError(ErrorUserNotFound)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		envelope := envelopeFromResponse(t, resp.Body)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "User not found", envelope["message"])
		assert.Equal(t, "Email not found", envelope["error"])
		assert.Equal(t, float64(fiber.StatusBadRequest), envelope["statusCode"])
	})

	t.Run("internal error should not leak the cause", func(t *testing.T) {
		app := testAppWithError(NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(errors.New("connection refused")),
		))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		envelope := envelopeFromResponse(t, resp.Body)
		assert.Equal(t, "An error occurred", envelope["message"])
		assert.NotContains(t, envelope, "error")
	})

	t.Run("plain error should map to a generic 500 envelope", func(t *testing.T) {
		app := testAppWithError(errors.New("boom"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		envelope := envelopeFromResponse(t, resp.Body)
		assert.Equal(t, "An error occurred", envelope["message"])
		assert.NotContains(t, envelope, "error")
	})

	t.Run("fiber error should keep its status code", func(t *testing.T) {
		app := testAppWithError(fiber.ErrMethodNotAllowed)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestNewError(t *testing.T) {
	cerr := NewError(fiber.StatusBadRequest, "malformed request body").
		SetSeverity(zapcore.WarnLevel).
		SetPublicMessage("Invalid input data")

	assert.Equal(t, fiber.StatusBadRequest, cerr.HttpStatusCode)
	assert.Equal(t, zapcore.WarnLevel, cerr.LogSeverity)
	assert.Equal(t, "Invalid input data", cerr.PublicMessage)
	assert.EqualError(t, cerr, "malformed request body")
}
