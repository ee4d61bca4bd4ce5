package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is an opening candidates apply to. Its description is the text resumes
// are matched against.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null;index" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ClientID    string    `gorm:"type:text" json:"client_id"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
