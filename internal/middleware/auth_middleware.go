package middleware

import (
	"quizcafe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber.Ctx locals key of the verified *service.Claims.
const ClaimsKey = "claims"

// RequiresAuth protects a route with a bearer token carrying permission.
// Failures are returned as *domain.AuthError for the ErrorHandler.
func RequiresAuth(verifier *service.PermissionVerifier, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := service.TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			return err
		}

		if err := service.CheckPermission(claims, permission); err != nil {
			return err
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
