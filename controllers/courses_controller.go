package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	"lms/utils"
	"lms/validators"
)

type CoursesController struct {
	Catalog *services.Catalog
}

func NewCoursesController(catalog *services.Catalog) *CoursesController {
	return &CoursesController{Catalog: catalog}
}

// List godoc
// @Summary List all courses
// @Description Public course list, no authentication required
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (cc *CoursesController) List(c *fiber.Ctx) error {
	courses, err := cc.Catalog.ListCourses()
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(courses)
}

// Create godoc
// @Summary Create a course
// @Description Instructor-only: creates a course with an empty lesson sequence
// @Tags courses
// @Accept json
// @Produce json
// @Param course body validators.CreateCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 403 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CoursesController) Create(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	input, ok := c.Locals("validatedCourse").(*validators.CreateCourseRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	course, err := cc.Catalog.CreateCourse(identity, input.Title, input.Subtitle)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// Update applies the provided fields only; the owning instructor may clear
// the subtitle but never the title.
func (cc *CoursesController) Update(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	input, ok := c.Locals("validatedCourseUpdate").(*validators.UpdateCourseRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	course, err := cc.Catalog.UpdateCourse(identity, uint(courseID), input.Title, input.Subtitle)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(course)
}
