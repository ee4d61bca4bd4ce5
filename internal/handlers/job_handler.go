package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type JobHandler struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
}

func NewJobHandler(jobRepo repositories.JobRepository, candidateRepo repositories.CandidateRepository) *JobHandler {
	return &JobHandler{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
	}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if strings.TrimSpace(req.Description) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
	}

	if err := h.jobRepo.Create(c.UserContext(), job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleListCandidates handles GET /jobs/:id/candidates, best score first.
func (h *JobHandler) HandleListCandidates(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	ctx := c.UserContext()

	if _, err := h.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return err
	}

	candidates, err := h.candidateRepo.ListByJob(ctx, jobID)
	if err != nil {
		return err
	}

	response := make([]models.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		result, err := candidate.Result()
		if err != nil {
			return err
		}
		response = append(response, models.CandidateResponse{
			ID:          candidate.ID.String(),
			FullName:    candidate.FullName,
			Email:       candidate.Email,
			PhoneNumber: candidate.PhoneNumber,
			ResumeURL:   candidate.ResumeURL,
			Result:      result,
		})
	}

	return c.JSON(fiber.Map{
		"job_id":     jobID.String(),
		"candidates": response,
	})
}
