// Package validators parses and validates request bodies before they reach
// the controllers, storing the typed payload in the request locals.
package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/models"
	"lms/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required"
		}
		if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required"
		}
		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters"
		}
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		} else if !models.ValidRole(reqData.Role) {
			errors["role"] = "Role must be student or instructor"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
