package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/utils"
)

type CreateCourseRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// UpdateCourseRequest distinguishes omitted fields from empty ones so a
// subtitle can be cleared while an omitted title stays untouched.
type UpdateCourseRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
