package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/apperr"
	"lms/config"
	"lms/policy"
	"lms/utils"
)

const identityKey = "identity"

// Protected resolves the Bearer token into the caller identity and stores it
// in the request locals. Requests without a valid token never reach the
// handler.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Error(c, apperr.New(apperr.Unauthenticated, "No token provided"))
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Error(c, apperr.New(apperr.Unauthenticated, "Invalid Authorization header format"))
		}

		identity, err := utils.ParseIdentity(strings.TrimPrefix(authHeader, "Bearer "), cfg)
		if err != nil {
			return utils.Error(c, err)
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// Identity returns the caller identity placed by Protected.
func Identity(c *fiber.Ctx) (policy.Identity, bool) {
	identity, ok := c.Locals(identityKey).(policy.Identity)
	return identity, ok
}
