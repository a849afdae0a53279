//go:build unit

package validation

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBodyPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"required,min=2,nowhitespace"`
}

func (p *testBodyPayload) Normalize() {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Nickname = strings.TrimSpace(p.Nickname)
}

func (p *testBodyPayload) Messages() map[string]string {
	return map[string]string{
		"Email.required":        "Email is required",
		"Email.email":           "Please provide a valid email address",
		"Nickname.required":     "Nickname is required",
		"Nickname.min":          "Nickname must be at least 2 characters long",
		"Nickname.nowhitespace": "Nickname cannot contain spaces",
	}
}

type testListQuery struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (q *testListQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 10
	}
}

func errorDetailFromResponse(t *testing.T, body io.Reader) map[string][]string {
	t.Helper()

	rawBody, err := io.ReadAll(body)
	require.NoError(t, err)

	var envelope struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rawBody, &envelope))

	return envelope.Error
}

func TestMiddleware_Body(t *testing.T) {
	newApp := func(captured **testBodyPayload) *fiber.App {
		app := fiber.New()
		app.Post(
			"/",
			Middleware(Schemas{Body: func() interface{} { return new(testBodyPayload) }}),
			func(ctx *fiber.Ctx) error {
				*captured = Value[testBodyPayload](ctx, PartBody)
				return ctx.SendStatus(fiber.StatusOK)
			},
		)
		return app
	}

	t.Run("happy path with coercion and unknown field stripping", func(t *testing.T) {
		var captured *testBodyPayload
		app := newApp(&captured)

		req := httptest.NewRequest(
			fiber.MethodPost,
			"/",
			strings.NewReader(`{"email":"  John@Example.COM ","nickname":"johnny","unknownField":42}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotNil(t, captured)
		assert.Equal(t, "john@example.com", captured.Email)
	})

	t.Run("should collect all errors not just the first", func(t *testing.T) {
		var captured *testBodyPayload
		app := newApp(&captured)

		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, captured)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Equal(
			t,
			[]string{"Email is required", "Nickname is required"},
			detail[PartBody],
		)
	})

	t.Run("custom no whitespace rule", func(t *testing.T) {
		var captured *testBodyPayload
		app := newApp(&captured)

		req := httptest.NewRequest(
			fiber.MethodPost,
			"/",
			strings.NewReader(`{"email":"john@example.com","nickname":"john doe"}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Equal(t, []string{"Nickname cannot contain spaces"}, detail[PartBody])
	})

	t.Run("when body is not json should return error under body key", func(t *testing.T) {
		var captured *testBodyPayload
		app := newApp(&captured)

		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`"invalid":"body"`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Contains(t, detail, PartBody)
	})
}

func TestMiddleware_Query(t *testing.T) {
	newApp := func(captured **testListQuery) *fiber.App {
		app := fiber.New()
		app.Get(
			"/items",
			Middleware(Schemas{Query: func() interface{} { return new(testListQuery) }}),
			func(ctx *fiber.Ctx) error {
				*captured = Value[testListQuery](ctx, PartQuery)
				return ctx.SendStatus(fiber.StatusOK)
			},
		)
		return app
	}

	t.Run("empty query should validate to defaults", func(t *testing.T) {
		var captured *testListQuery
		app := newApp(&captured)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotNil(t, captured)
		assert.Equal(t, 1, captured.Page)
		assert.Equal(t, 10, captured.Limit)
	})

	t.Run("non numeric page should produce an error under query key", func(t *testing.T) {
		var captured *testListQuery
		app := newApp(&captured)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items?page=abc", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, captured)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Contains(t, detail, PartQuery)
	})

	t.Run("limit above the maximum should be rejected", func(t *testing.T) {
		var captured *testListQuery
		app := newApp(&captured)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items?limit=500", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Contains(t, detail, PartQuery)
	})
}

func TestMiddleware_MultipleParts(t *testing.T) {
	t.Run("errors from independent parts should aggregate", func(t *testing.T) {
		app := fiber.New()
		app.Post(
			"/items",
			Middleware(Schemas{
				Body:  func() interface{} { return new(testBodyPayload) },
				Query: func() interface{} { return new(testListQuery) },
			}),
			func(ctx *fiber.Ctx) error {
				return ctx.SendStatus(fiber.StatusOK)
			},
		)

		req := httptest.NewRequest(fiber.MethodPost, "/items?limit=500", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		detail := errorDetailFromResponse(t, resp.Body)
		assert.Contains(t, detail, PartBody)
		assert.Contains(t, detail, PartQuery)
	})
}
