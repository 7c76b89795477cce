package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"lms/config"
	"lms/middleware"
	"lms/routes"
	"lms/store"
	"lms/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := utils.InitLogger(cfg)
	defer logger.Sync()

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	stores := store.Stores{
		Users:    store.NewUsers(db),
		Courses:  store.NewCourses(db),
		Lessons:  store.NewLessons(db),
		Progress: store.NewProgress(db),
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(logger))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Learning platform API"})
	})

	routes.SetupRoutes(app, stores, cfg)

	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
