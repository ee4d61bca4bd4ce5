package models

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	StatusQueued     SubmissionStatus = "queued"
	StatusProcessing SubmissionStatus = "processing"
	StatusCompleted  SubmissionStatus = "completed"
	StatusFailed     SubmissionStatus = "failed"
)

// Submission tracks one application from upload until its candidate record is
// written.
type Submission struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"job_id"`
	ResumeKey        string           `gorm:"type:text;not null" json:"resume_key"`
	ResumeURL        string           `gorm:"type:text" json:"resume_url"`
	OriginalFileName string           `gorm:"type:text" json:"original_filename"`
	CoverLetter      string           `gorm:"type:text" json:"-"`
	Status           SubmissionStatus `gorm:"not null;default:'queued'" json:"status"`
	CandidateID      *uuid.UUID       `gorm:"type:uuid" json:"candidate_id,omitempty"`
	ErrorMessage     *string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Job       Job        `gorm:"foreignKey:JobID" json:"-"`
	Candidate *Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
