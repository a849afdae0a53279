//go:build unit

package jwt_generator

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedTestApp(t *testing.T, jwtGenerator JwtGenerator) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", Middleware(jwtGenerator), func(ctx *fiber.Ctx) error {
		claims := ClaimsFromContext(ctx)
		require.NotNil(t, claims)
		return ctx.SendString(claims.Email)
	})

	return app
}

func TestMiddleware(t *testing.T) {
	jwtGenerator := testJwtGenerator()

	t.Run("happy path", func(t *testing.T) {
		accessToken, err := jwtGenerator.GenerateAccessToken(TestUserName, TestUserEmail, TestUserId)
		require.NoError(t, err)

		app := protectedTestApp(t, jwtGenerator)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", accessToken))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when authorization header is missing should return unauthorized", func(t *testing.T) {
		app := protectedTestApp(t, jwtGenerator)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("when token is invalid should return unauthorized", func(t *testing.T) {
		app := protectedTestApp(t, jwtGenerator)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer abcd.abcd.abcd")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("when token is a refresh token should return unauthorized", func(t *testing.T) {
		tokens, err := jwtGenerator.GenerateTokens(TestUserName, TestUserEmail, TestUserId)
		require.NoError(t, err)

		app := protectedTestApp(t, jwtGenerator)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", tokens.RefreshToken))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
