package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	"lms/utils"
	"lms/validators"
)

type LessonsController struct {
	Catalog *services.Catalog
}

func NewLessonsController(catalog *services.Catalog) *LessonsController {
	return &LessonsController{Catalog: catalog}
}

func (lc *LessonsController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	lessons, err := lc.Catalog.ListLessons(uint(courseID))
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(lessons)
}

func (lc *LessonsController) Get(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	lesson, err := lc.Catalog.GetLesson(uint(lessonID))
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(lesson)
}

// Create godoc
// @Summary Create a lesson
// @Description Instructor-only: inserts the lesson and appends it to the owning course's sequence atomically
// @Tags lessons
// @Accept json
// @Produce json
// @Param lesson body validators.CreateLessonRequest true "Lesson data"
// @Success 201 {object} models.Lesson
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /lessons [post]
func (lc *LessonsController) Create(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	input, ok := c.Locals("validatedLesson").(*validators.CreateLessonRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	problems := make([]services.NewProblem, 0, len(input.Problems))
	for _, p := range input.Problems {
		problems = append(problems, services.NewProblem{Question: p.Question})
	}

	lesson, err := lc.Catalog.CreateLesson(identity, input.CourseID, input.Title, input.Notes, problems)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}
