package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate(t *testing.T) {
	jobID := uuid.New()
	fields := ResumeFields{
		FieldEmail:    {Value("  Jane.Doe@Example.COM ")},
		FieldFullName: {Value("Jane Doe")},
	}
	result := EvaluationResult{
		Score:             81,
		EducationLevel:    EducationMasters,
		TechnicalSkills:   []string{"Go"},
		CoverLetterReport: CoverLetterReport{AIProbability: -1},
	}

	candidate, err := NewCandidate(jobID, fields, "https://cdn/resume.pdf", result)
	require.NoError(t, err)

	assert.Equal(t, jobID, candidate.JobID)
	assert.Equal(t, "jane.doe@example.com", candidate.Email)
	assert.Equal(t, "Jane Doe", candidate.FullName)
	assert.JSONEq(t, `["Go"]`, string(candidate.TechnicalSkills))
	assert.JSONEq(t, `[]`, string(candidate.SoftSkills))

	restored, err := candidate.Result()
	require.NoError(t, err)
	assert.Equal(t, 81, restored.Score)
	assert.Equal(t, []string{"Go"}, restored.TechnicalSkills)
	assert.Equal(t, []string{}, restored.SoftSkills)
	assert.Equal(t, -1, restored.CoverLetterReport.AIProbability)
	assert.Equal(t, []string{}, restored.CoverLetterReport.Issues)
}

func TestCandidateResultWithEmptyColumns(t *testing.T) {
	restored, err := (&Candidate{Score: 10}).Result()
	require.NoError(t, err)

	assert.Equal(t, 10, restored.Score)
	assert.NotNil(t, restored.TechnicalSkills)
	assert.NotNil(t, restored.CoverLetterReport.Issues)
}
