package routes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/controllers"
	"lms/middleware"
	"lms/services"
	"lms/store"
	"lms/validators"
)

func SetupRoutes(app *fiber.App, stores store.Stores, cfg *config.Config) {
	catalog := services.NewCatalog(stores.Courses, stores.Lessons)
	ledger := services.NewLedger(stores.Progress, stores.Lessons)

	authMiddleware := middleware.Protected(cfg)

	// Auth routes
	authController := controllers.NewAuthController(stores.Users, cfg)
	app.Post("/api/auth/register", validators.Register(), authController.Register)
	app.Post("/api/auth/login", validators.Login(), authController.Login)

	// User routes
	userController := controllers.NewUserController(stores.Users)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Courses: public list, instructor-gated mutations (role and ownership
	// are enforced by the catalog service before any write).
	coursesController := controllers.NewCoursesController(catalog)
	app.Get("/api/courses", coursesController.List)
	app.Post("/api/courses", authMiddleware, validators.CreateCourse(), coursesController.Create)
	app.Put("/api/courses/:id", authMiddleware, validators.UpdateCourse(), coursesController.Update)

	// Lessons
	lessonsController := controllers.NewLessonsController(catalog)
	app.Get("/api/courses/:id/lessons", authMiddleware, lessonsController.ListByCourse)
	app.Get("/api/lessons/:id", authMiddleware, lessonsController.Get)
	app.Post("/api/lessons", authMiddleware, validators.CreateLesson(), lessonsController.Create)

	// Progress: POST routes registered before GET /:lessonId
	progressController := controllers.NewProgressController(ledger)
	progress := app.Group("/api/progress", authMiddleware)
	progress.Post("/notes", validators.ToggleNotes(), progressController.ToggleNotes)
	progress.Post("/problem", validators.MarkProblem(), progressController.MarkProblem)
	progress.Post("/time", validators.AddTime(), progressController.AddTime)
	progress.Get("/:lessonId", progressController.Get)
}
