package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/utils"
)

type ToggleNotesRequest struct {
	LessonID uint `json:"lessonId"`
	CourseID uint `json:"courseId"`
}

type MarkProblemRequest struct {
	LessonID  uint   `json:"lessonId"`
	CourseID  uint   `json:"courseId"`
	ProblemID string `json:"problemId"`
}

// AddTimeRequest keeps Delta as a pointer: an absent or non-numeric delta is
// invalid input, while an explicit zero or negative delta is allowed.
type AddTimeRequest struct {
	LessonID uint   `json:"lessonId"`
	CourseID uint   `json:"courseId"`
	Delta    *int64 `json:"delta"`
}

func ToggleNotes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ToggleNotesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		if reqData.LessonID == 0 {
			return utils.ValidationError(c, map[string]string{"lessonId": "Lesson ID is required"})
		}

		c.Locals("validatedToggleNotes", reqData)
		return c.Next()
	}
}

func MarkProblem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkProblemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required"
		}
		if strings.TrimSpace(reqData.ProblemID) == "" {
			errors["problemId"] = "Problem ID is required"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedMarkProblem", reqData)
		return c.Next()
	}
}

func AddTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddTimeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required"
		}
		if reqData.Delta == nil {
			errors["delta"] = "Delta must be a number"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedAddTime", reqData)
		return c.Next()
	}
}
