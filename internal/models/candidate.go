package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Candidate is the stored evaluation of one applicant for one job. A candidate
// is unique per (email, job).
type Candidate struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_candidates_email_job" json:"job_id"`
	Email              string         `gorm:"type:text;not null;uniqueIndex:idx_candidates_email_job" json:"email"`
	FullName           string         `gorm:"type:text" json:"full_name"`
	PhoneNumber        string         `gorm:"type:text" json:"phone_number"`
	ResumeURL          string         `gorm:"type:text" json:"resume_url"`
	Score              int            `gorm:"not null;default:0;index" json:"score"`
	Summary            string         `gorm:"type:text" json:"summary"`
	Strengths          string         `gorm:"type:text" json:"strengths"`
	Weaknesses         string         `gorm:"type:text" json:"weaknesses"`
	ExperienceYears    float64        `gorm:"type:decimal(5,1)" json:"experience_years"`
	EducationLevel     string         `gorm:"type:text" json:"education_level"`
	SkillsMatchedPct   float64        `gorm:"type:decimal(5,2)" json:"skills_matched_pct"`
	ResumeQualityScore int            `json:"resume_quality_score"`
	Certifications     string         `gorm:"type:text" json:"certifications"`
	TechnicalSkills    datatypes.JSON `gorm:"type:jsonb" json:"technical_skills"`
	SoftSkills         datatypes.JSON `gorm:"type:jsonb" json:"soft_skills"`
	PortfolioURL       string         `gorm:"type:text" json:"portfolio_url"`
	GithubURL          string         `gorm:"type:text" json:"github_url"`
	LinkedinURL        string         `gorm:"type:text" json:"linkedin_url"`
	CoverLetterReport  datatypes.JSON `gorm:"type:jsonb" json:"cover_letter_report"`
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// NewCandidate builds the row for an evaluated resume. Contact details come
// from the extracted fields; the email is lowercased so the upsert key is
// stable.
func NewCandidate(jobID uuid.UUID, fields ResumeFields, resumeURL string, result EvaluationResult) (*Candidate, error) {
	technical, err := json.Marshal(nonNil(result.TechnicalSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to encode technical skills: %w", err)
	}
	soft, err := json.Marshal(nonNil(result.SoftSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to encode soft skills: %w", err)
	}
	report, err := json.Marshal(result.CoverLetterReport)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cover letter report: %w", err)
	}

	return &Candidate{
		JobID:              jobID,
		Email:              strings.ToLower(strings.TrimSpace(fields.Text(FieldEmail))),
		FullName:           fields.Text(FieldFullName),
		PhoneNumber:        fields.Text(FieldPhoneNumber),
		ResumeURL:          resumeURL,
		Score:              result.Score,
		Summary:            result.Summary,
		Strengths:          result.Strengths,
		Weaknesses:         result.Weaknesses,
		ExperienceYears:    result.ExperienceYears,
		EducationLevel:     result.EducationLevel,
		SkillsMatchedPct:   result.SkillsMatchedPct,
		ResumeQualityScore: result.ResumeQualityScore,
		Certifications:     result.Certifications,
		TechnicalSkills:    datatypes.JSON(technical),
		SoftSkills:         datatypes.JSON(soft),
		PortfolioURL:       result.PortfolioURL,
		GithubURL:          result.GithubURL,
		LinkedinURL:        result.LinkedinURL,
		CoverLetterReport:  datatypes.JSON(report),
	}, nil
}

// Result rebuilds the evaluation stored in c.
func (c *Candidate) Result() (EvaluationResult, error) {
	result := EvaluationResult{
		Score:              c.Score,
		Summary:            c.Summary,
		Strengths:          c.Strengths,
		Weaknesses:         c.Weaknesses,
		ExperienceYears:    c.ExperienceYears,
		EducationLevel:     c.EducationLevel,
		SkillsMatchedPct:   c.SkillsMatchedPct,
		ResumeQualityScore: c.ResumeQualityScore,
		Certifications:     c.Certifications,
		TechnicalSkills:    []string{},
		SoftSkills:         []string{},
		PortfolioURL:       c.PortfolioURL,
		GithubURL:          c.GithubURL,
		LinkedinURL:        c.LinkedinURL,
		CoverLetterReport:  CoverLetterReport{Issues: []string{}},
	}

	if err := decodeColumn(c.TechnicalSkills, &result.TechnicalSkills); err != nil {
		return result, fmt.Errorf("failed to decode technical skills: %w", err)
	}
	if err := decodeColumn(c.SoftSkills, &result.SoftSkills); err != nil {
		return result, fmt.Errorf("failed to decode soft skills: %w", err)
	}
	if err := decodeColumn(c.CoverLetterReport, &result.CoverLetterReport); err != nil {
		return result, fmt.Errorf("failed to decode cover letter report: %w", err)
	}
	if result.CoverLetterReport.Issues == nil {
		result.CoverLetterReport.Issues = []string{}
	}

	return result, nil
}

func decodeColumn(raw datatypes.JSON, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
