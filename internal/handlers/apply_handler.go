package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type ApplyHandler struct {
	jobRepo        repositories.JobRepository
	submissionRepo repositories.SubmissionRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
}

func NewApplyHandler(
	jobRepo repositories.JobRepository,
	submissionRepo repositories.SubmissionRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *ApplyHandler {
	return &ApplyHandler{
		jobRepo:        jobRepo,
		submissionRepo: submissionRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleApply handles POST /apply. The resume is stored and queued; the
// evaluation itself runs in the worker.
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(strings.TrimSpace(c.FormValue("job_id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id is required and must be a valid UUID",
		})
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
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

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read resume file",
		})
	}
	defer file.Close()

	key, url, err := h.storageService.Save(ctx, fileHeader.Filename, file, fileHeader.Size, "resume")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only PDF resumes are supported",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	submission := &models.Submission{
		ID:               uuid.New(),
		JobID:            jobID,
		ResumeKey:        key,
		ResumeURL:        url,
		OriginalFileName: fileHeader.Filename,
		CoverLetter:      c.FormValue("cover_letter"),
		Status:           models.StatusQueued,
	}

	if err := h.submissionRepo.Create(ctx, submission); err != nil {
		if delErr := h.storageService.Delete(ctx, key); delErr != nil {
			logger.Warn().Err(delErr).Str("key", key).Msg("failed to clean up resume")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create submission",
		})
	}

	h.worker.Enqueue(submission.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ApplyResponse{
		ID:     submission.ID.String(),
		Status: string(models.StatusQueued),
	})
}
