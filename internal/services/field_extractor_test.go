package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

func TestFieldExtractorDecodesFields(t *testing.T) {
	judge := &stubJudge{other: "```json\n" + `{
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"technical_skills": ["Go", "SQL"],
		"phone_number": null,
		"professional_experience": [{"start_year": 2020, "end_year": "present", "title": "Engineer"}]
	}` + "\n```"}

	fields, err := NewFieldExtractor(judge).Extract(context.Background(), "  Jane Doe resume text \n")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", fields.Text(models.FieldFullName))
	assert.Equal(t, "jane@example.com", fields.Text(models.FieldEmail))
	assert.Equal(t, []string{"Go", "SQL"}, fields.Values(models.FieldTechnicalSkills).Texts())
	assert.NotContains(t, fields, models.FieldPhoneNumber)
	assert.Equal(t, "Jane Doe resume text", fields.Text(models.FieldRawText))

	entries := fields.Experience()
	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0].Title)

	prompt := judge.promptContaining("Jane Doe resume text")
	assert.NotEmpty(t, prompt)
}

func TestFieldExtractorErrors(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		judge := &stubJudge{}
		_, err := NewFieldExtractor(judge).Extract(context.Background(), "   ")
		assert.Error(t, err)
		assert.Equal(t, 0, judge.calls())
	})

	t.Run("judge failure", func(t *testing.T) {
		boom := errors.New("unavailable")
		judge := &sequenceJudge{responses: []string{""}, errs: []error{boom}}
		_, err := NewFieldExtractor(judge).Extract(context.Background(), "text")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("not json", func(t *testing.T) {
		judge := &stubJudge{other: "Name: Jane"}
		_, err := NewFieldExtractor(judge).Extract(context.Background(), "text")
		assert.ErrorIs(t, err, ErrMalformedJudgement)
	})
}
