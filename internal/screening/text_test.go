package screening

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

func TestResumeTextPrefersRawText(t *testing.T) {
	fields := models.ResumeFields{
		models.FieldRawText:  {models.Value("the original document")},
		models.FieldFullName: {models.Value("Jane Doe")},
	}

	assert.Equal(t, "the original document", ResumeText(fields))
}

func TestResumeTextRendersSections(t *testing.T) {
	var fields models.ResumeFields
	require.NoError(t, json.Unmarshal([]byte(`{
		"hobbies": "chess",
		"technical_skills": ["Go", "Docker"],
		"email": "jane@example.com",
		"full_name": "Jane Doe",
		"phone_number": null,
		"professional_experience": [
			{"title": "Engineer", "company": "Acme", "start_month": "March", "start_year": 2019, "end_year": "present"}
		]
	}`), &fields))

	want := "Full Name: Jane Doe\n" +
		"Email: jane@example.com\n" +
		"Professional Experience:\n" +
		"- Engineer at Acme (March 2019 - present)\n" +
		"\n" +
		"Technical Skills:\n" +
		"- Go\n" +
		"- Docker\n" +
		"\n" +
		"Hobbies: chess"

	assert.Equal(t, want, ResumeText(fields))
}

func TestResumeTextEmpty(t *testing.T) {
	assert.Equal(t, "", ResumeText(nil))
	assert.Equal(t, "", ResumeText(models.ResumeFields{models.FieldEmail: nil}))
}
