//go:build unit

package server

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-api/pkg/config"
)

type testHandler struct {
	registered bool
}

func (h *testHandler) RegisterRoutes(app *fiber.App) {
	h.registered = true
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})
}

func TestNewServer(t *testing.T) {
	srv := NewServer(&config.Config{ServerPort: "8080"}, nil)

	assert.Implements(t, (*Server)(nil), srv)
	assert.NotNil(t, srv.GetFiberInstance())
}

func TestServer_RegisterRoutes(t *testing.T) {
	handler := &testHandler{}
	srv := NewServer(&config.Config{ServerPort: "8080"}, []Handler{handler})

	srv.RegisterRoutes()

	assert.True(t, handler.registered)

	resp, err := srv.GetFiberInstance().Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestServer_Start(t *testing.T) {
	srv := NewServer(&config.Config{ServerPort: "0"}, nil)

	errorChannel := make(chan error, 1)
	go func() {
		errorChannel <- srv.Start()
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, srv.Shutdown())

	select {
	case err := <-errorChannel:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
