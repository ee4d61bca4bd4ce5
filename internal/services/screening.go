package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

// ScreeningService runs a queued submission through the whole pipeline and
// stores the resulting candidate.
type ScreeningService interface {
	ProcessSubmission(ctx context.Context, id uuid.UUID) error
}

type screeningService struct {
	submissions repositories.SubmissionRepository
	jobs        repositories.JobRepository
	candidates  repositories.CandidateRepository
	storage     StorageService
	pdfParser   PDFParserService
	extractor   ResumeFieldExtractor
	evaluator   Evaluator
}

func NewScreeningService(
	submissions repositories.SubmissionRepository,
	jobs repositories.JobRepository,
	candidates repositories.CandidateRepository,
	storage StorageService,
	pdfParser PDFParserService,
	extractor ResumeFieldExtractor,
	evaluator Evaluator,
) ScreeningService {
	return &screeningService{
		submissions: submissions,
		jobs:        jobs,
		candidates:  candidates,
		storage:     storage,
		pdfParser:   pdfParser,
		extractor:   extractor,
		evaluator:   evaluator,
	}
}

// ProcessSubmission marks the submission failed when storage, parsing, field
// extraction or persistence fails. A failed scoring call is not a failure:
// the candidate is stored with the evaluator's fallback result.
func (s *screeningService) ProcessSubmission(ctx context.Context, id uuid.UUID) error {
	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get submission: %w", err)
	}
	if submission.Status != models.StatusQueued {
		logger.Debug().Str("submission_id", id.String()).Str("status", string(submission.Status)).Msg("submission already picked up")
		return nil
	}

	if err := s.submissions.UpdateStatus(ctx, id, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log := logger.Logger.With().Str("submission_id", id.String()).Logger()
	log.Info().Msg("processing submission")

	job, err := s.jobs.FindByID(ctx, submission.JobID)
	if err != nil {
		return s.fail(ctx, id, "job not found", err)
	}

	data, err := s.storage.Fetch(ctx, submission.ResumeKey)
	if err != nil {
		return s.fail(ctx, id, "failed to fetch resume", err)
	}

	text, err := s.pdfParser.ExtractText(data)
	if err != nil {
		return s.fail(ctx, id, "failed to parse resume", err)
	}

	fields, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return s.fail(ctx, id, "failed to extract resume fields", err)
	}

	result := s.evaluator.Evaluate(ctx, fields, job.Description, submission.CoverLetter)

	candidate, err := models.NewCandidate(job.ID, fields, submission.ResumeURL, result)
	if err != nil {
		return s.fail(ctx, id, "failed to build candidate", err)
	}
	if candidate.Email == "" {
		// without an email the (email, job) key would merge unrelated applicants
		candidate.Email = "unknown+" + id.String()
	}

	if err := s.candidates.Upsert(ctx, candidate); err != nil {
		return s.fail(ctx, id, "failed to save candidate", err)
	}

	if err := s.submissions.MarkCompleted(ctx, id, candidate.ID); err != nil {
		return fmt.Errorf("failed to complete submission: %w", err)
	}

	log.Info().Str("candidate_id", candidate.ID.String()).Int("score", result.Score).Msg("submission completed")
	return nil
}

func (s *screeningService) fail(ctx context.Context, id uuid.UUID, reason string, cause error) error {
	err := fmt.Errorf("%s: %w", reason, cause)
	if markErr := s.submissions.MarkFailed(ctx, id, err.Error()); markErr != nil {
		logger.Error().Err(markErr).Str("submission_id", id.String()).Msg("failed to mark submission failed")
	}
	return err
}
