package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Jobs     *JobHandler
	Apply    *ApplyHandler
	Result   *ResultHandler
	Evaluate *EvaluateHandler
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/jobs", h.Jobs.HandleCreateJob)
	api.Get("/jobs/:id/candidates", h.Jobs.HandleListCandidates)
	api.Post("/apply", h.Apply.HandleApply)
	api.Get("/result/:id", h.Result.HandleGetResult)
	api.Post("/evaluate", h.Evaluate.HandleEvaluate)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/jobs",
				"GET /api/v1/jobs/:id/candidates",
				"POST /api/v1/apply",
				"GET /api/v1/result/:id",
				"POST /api/v1/evaluate",
			},
		})
	})
}

// ErrorHandler renders errors returned from handlers as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
