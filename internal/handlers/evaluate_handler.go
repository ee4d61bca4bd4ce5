package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

type EvaluateHandler struct {
	evaluator services.Evaluator
}

func NewEvaluateHandler(evaluator services.Evaluator) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /evaluate: already extracted fields are
// evaluated synchronously and nothing is stored. Every field is optional, so
// an empty or missing resume_fields is evaluated as is.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result := h.evaluator.Evaluate(c.UserContext(), req.ResumeFields, req.JobDescription, req.CoverLetter)

	return c.JSON(result)
}
