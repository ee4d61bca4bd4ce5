package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/resume-screener/internal/models"
)

type CandidateRepository interface {
	Upsert(ctx context.Context, candidate *models.Candidate) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Candidate, error)
}

// candidateUpdateColumns are rewritten when an applicant re-applies to a job.
var candidateUpdateColumns = []string{
	"full_name", "phone_number", "resume_url",
	"score", "summary", "strengths", "weaknesses",
	"experience_years", "education_level", "skills_matched_pct",
	"resume_quality_score", "certifications", "technical_skills", "soft_skills",
	"portfolio_url", "github_url", "linkedin_url", "cover_letter_report",
	"updated_at",
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Upsert inserts candidate or, when the (email, job) pair exists, overwrites
// the stored evaluation. candidate.ID is set to the row's id either way.
func (r *candidateRepository) Upsert(ctx context.Context, candidate *models.Candidate) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns(candidateUpdateColumns),
		}).
		Create(candidate).Error
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

// ListByJob returns the candidates of a job, best score first.
func (r *candidateRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("score DESC").
		Order("created_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}
