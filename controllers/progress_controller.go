package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	"lms/utils"
	"lms/validators"
)

type ProgressController struct {
	Ledger *services.Ledger
}

func NewProgressController(ledger *services.Ledger) *ProgressController {
	return &ProgressController{Ledger: ledger}
}

// Get godoc
// @Summary Get lesson progress
// @Description Returns the caller's progress for a lesson, or a zero-value view when none exists
// @Tags progress
// @Produce json
// @Success 200 {object} models.Progress
// @Security ApiKeyAuth
// @Router /progress/{lessonId} [get]
func (pc *ProgressController) Get(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	progress, err := pc.Ledger.Get(identity.UserID, uint(lessonID))
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(progress)
}

func (pc *ProgressController) ToggleNotes(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	input, ok := c.Locals("validatedToggleNotes").(*validators.ToggleNotesRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	progress, err := pc.Ledger.ToggleNotes(identity.UserID, input.LessonID, input.CourseID)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(progress)
}

func (pc *ProgressController) MarkProblem(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	input, ok := c.Locals("validatedMarkProblem").(*validators.MarkProblemRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	progress, err := pc.Ledger.MarkProblem(identity.UserID, input.LessonID, input.CourseID, input.ProblemID)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(progress)
}

func (pc *ProgressController) AddTime(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	input, ok := c.Locals("validatedAddTime").(*validators.AddTimeRequest)
	if !ok {
		return utils.BadRequest(c, "Invalid request data")
	}

	progress, err := pc.Ledger.AddTime(identity.UserID, input.LessonID, input.CourseID, *input.Delta)
	if err != nil {
		return utils.Error(c, err)
	}
	return c.JSON(progress)
}
