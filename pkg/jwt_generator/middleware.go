package jwt_generator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"commerce-api/pkg/apiresponse"
)

const bearerPrefix = "Bearer "

// Middleware guards a route group with access token verification. Token
// failures answer 401; validation and business failures elsewhere stay 400.
func Middleware(jwtGenerator JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
			return apiresponse.RespondError(
				ctx,
				"Token is required",
				fiber.StatusUnauthorized,
				apiresponse.DetailText("No token provided"),
				nil,
			)
		}

		rawJwtToken := strings.TrimPrefix(authorizationHeader, bearerPrefix)
		claims := jwtGenerator.VerifyAccessToken(rawJwtToken)
		if claims == nil {
			return apiresponse.RespondError(
				ctx,
				"Invalid or expired token",
				fiber.StatusUnauthorized,
				apiresponse.DetailText("Invalid or expired token"),
				nil,
			)
		}

		ctx.Locals(ClaimsContextKey, claims)
		return ctx.Next()
	}
}

func ClaimsFromContext(ctx *fiber.Ctx) *Claims {
	claims, _ := ctx.Locals(ClaimsContextKey).(*Claims)
	return claims
}
