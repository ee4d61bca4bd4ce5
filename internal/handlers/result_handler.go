package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type ResultHandler struct {
	submissionRepo repositories.SubmissionRepository
}

func NewResultHandler(submissionRepo repositories.SubmissionRepository) *ResultHandler {
	return &ResultHandler{
		submissionRepo: submissionRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid submission ID format",
		})
	}

	submission, err := h.submissionRepo.FindByID(c.UserContext(), submissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Submission not found",
			})
		}
		return err
	}

	response := models.ResultResponse{
		ID:     submission.ID.String(),
		JobID:  submission.JobID.String(),
		Status: string(submission.Status),
	}

	if submission.Status == models.StatusCompleted && submission.Candidate != nil {
		result, err := submission.Candidate.Result()
		if err != nil {
			return err
		}
		response.Result = &result
	}

	if submission.Status == models.StatusFailed && submission.ErrorMessage != nil {
		response.ErrorMessage = submission.ErrorMessage
	}

	return c.JSON(response)
}
