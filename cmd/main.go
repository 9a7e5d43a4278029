package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/coursehub/coursehub/config"
	"github.com/coursehub/coursehub/internal/api/middleware"
	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/db"
	"github.com/coursehub/coursehub/internal/db/repos"
	"github.com/coursehub/coursehub/internal/logger"
	"github.com/coursehub/coursehub/internal/services"
	"github.com/coursehub/coursehub/internal/types"
	"github.com/coursehub/coursehub/pkg/api/v1/handlers"
	"github.com/coursehub/coursehub/pkg/api/v1/routes"
)

func main() {
	logger.Initialize()

	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     config.GetEnvInt("DB_PORT", db.DefaultPort),
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Fatalf("Failed to create upload directory: %v", err)
	}

	courseRepo := repos.NewCourseRepository(database)
	enrollmentRepo := repos.NewEnrollmentRepository(database)
	api := handlers.NewAPIHandler(
		services.NewCourseService(courseRepo),
		services.NewEnrollmentService(enrollmentRepo, courseRepo),
		uploadDir,
	)

	verifier := auth.NewHTTPVerifier(config.GetEnv("AUTH_URL", "http://localhost:9096"))

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(middleware.Logger())
	app.Use(middleware.Session(verifier))
	app.Static("/uploads", uploadDir)

	routes.RegisterRoutes(app, handlers.NewCourseHandler(api), handlers.NewEnrollmentHandler(api))

	port := config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("Starting API server on port %s", port)
	logger.Fatal(app.Listen(":" + port))
}

// errorHandler maps uncaught errors to the envelope so unexpected failures
// still honor the response contract
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.ErrorWithFields("unhandled error", map[string]interface{}{
		"path":   c.Path(),
		"status": code,
		"error":  err.Error(),
	})

	return c.Status(code).JSON(types.Envelope{
		Success: false,
		Error:   err.Error(),
	})
}
