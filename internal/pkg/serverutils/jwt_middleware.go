package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/pkg/auth"
)

// JwtMiddleware rejects requests without a valid bearer token and stores the
// resolved user id in ctx.Locals("user_id") as a string.
func JwtMiddleware(issuer *auth.TokenIssuer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		userId, err := issuer.Resolve(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}
