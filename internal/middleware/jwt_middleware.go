package middleware

import (
	"log"

	"bioskop/internal/repositories"
	"bioskop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired guards protected routes. It strips the bearer scheme from the
// Authorization header exactly once, validates the token, then resolves the
// claims to a live user record with a single store lookup — a token for an
// account deleted after issuance is rejected. Every failure kind collapses
// to the same 401 externally; the kind is only logged.
func AuthRequired(tokens *services.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString, err := services.StripScheme(authHeader)
		if err != nil {
			log.Printf("Auth rejected: %v", err)
			return unauthorized(c)
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			log.Printf("Auth rejected: %v", err)
			return unauthorized(c)
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			log.Printf("Auth rejected: token claims carry no username")
			return unauthorized(c)
		}

		user, err := userRepo.GetByUsername(username)
		if err != nil {
			log.Printf("Auth rejected: could not resolve user %q: %v", username, err)
			return unauthorized(c)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Authentication failed.",
	})
}
