package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/store"
)

type UserController struct {
	Users store.Users
}

func NewUserController(users store.Users) *UserController {
	return &UserController{Users: users}
}

// GetProfile returns the authenticated caller's own account.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	user, err := uc.Users.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not query database"})
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}
