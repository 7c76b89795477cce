package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/utils"
)

type ProblemInput struct {
	Question string `json:"question"`
}

type CreateLessonRequest struct {
	CourseID uint           `json:"courseId"`
	Title    string         `json:"title"`
	Notes    string         `json:"notes"`
	Problems []ProblemInput `json:"problems"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required"
		}
		for _, p := range reqData.Problems {
			if strings.TrimSpace(p.Question) == "" {
				errors["problems"] = "Every problem needs a question"
				break
			}
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
