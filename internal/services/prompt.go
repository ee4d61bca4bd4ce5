package services

import (
	"fmt"
	"strings"
)

// Rubric weights, in percent, for the final score.
const (
	WeightResumeQuality  = 20
	WeightExperience     = 20
	WeightSkillMatch     = 25
	WeightEducation      = 15
	WeightSoftSkills     = 10
	WeightCertifications = 10
)

// ScoringInput is what the final scoring prompt embeds.
type ScoringInput struct {
	ResumeText         string
	JobDescription     string
	ResumeQualityScore int
	ExperienceYears    float64
	SkillsMatchedPct   float64
	EducationLevel     string
	TechnicalSkills    []string
	SoftSkills         []string
	Certifications     string
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt asks for the final 0-100 score using the weighted rubric
// and the precomputed signals.
func (pb *PromptBuilder) BuildScoringPrompt(in ScoringInput) string {
	return fmt.Sprintf(`You are an experienced technical recruiter. Evaluate the candidate's resume against the job description.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

PRECOMPUTED SIGNALS (treat these as facts):
- Resume quality score: %d/100
- Total professional experience: %.1f years
- Skill match with the job description: %.2f%%
- Highest education level: %s
- Technical skills: %s
- Soft skills: %s
- Certifications: %s

SCORING RUBRIC (weights sum to 100%%):
1. Resume quality (Weight: %d%%)
2. Experience (Weight: %d%%)
3. Skill match (Weight: %d%%)
4. Education (Weight: %d%%)
5. Soft skills (Weight: %d%%)
6. Certifications (Weight: %d%%)

Return your response in the following JSON format:
{
  "score": <integer 0-100>,
  "summary": "<2-3 sentence overall assessment>",
  "strengths": "<key strengths relevant to the job>",
  "weaknesses": "<key gaps or risks>"
}`,
		orNone(in.JobDescription),
		orNone(in.ResumeText),
		in.ResumeQualityScore,
		in.ExperienceYears,
		in.SkillsMatchedPct,
		in.EducationLevel,
		joinOrNone(in.TechnicalSkills),
		joinOrNone(in.SoftSkills),
		orNone(in.Certifications),
		WeightResumeQuality, WeightExperience, WeightSkillMatch,
		WeightEducation, WeightSoftSkills, WeightCertifications,
	)
}

// BuildCoverLetterPrompt asks whether the cover letter is consistent with the
// resume and how likely it is to be machine generated.
func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeText, coverLetter string) string {
	return fmt.Sprintf(`You are reviewing a job application for authenticity.

The RESUME below is the ground truth about the candidate. The COVER LETTER is a set of claims.
Identify claims in the cover letter that are not supported by, or contradict, the resume.
Estimate how likely it is that the cover letter was generated by an AI writing tool.

RESUME:
%s

COVER LETTER:
%s

Return your response in the following JSON format:
{
  "analysis": "<short assessment of the cover letter>",
  "issues": ["<unsupported or contradicting claim>", "..."],
  "ai_probability": <integer 0-100>,
  "recommendation": "<what the recruiter should do next>"
}`,
		orNone(resumeText), coverLetter)
}

// BuildFieldExtractionPrompt asks for the structured fields of a resume.
func (pb *PromptBuilder) BuildFieldExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract the following fields from the resume text below. Use null for anything that is not stated.

RESUME:
%s

Return your response in the following JSON format:
{
  "full_name": "<string>",
  "email": "<string>",
  "phone_number": "<string>",
  "technical_skills": ["<skill>"],
  "soft_skills": ["<skill>"],
  "certifications": ["<certification>"],
  "education": ["<degree, institution, year>"],
  "professional_experience": [
    {
      "title": "<job title>",
      "company": "<company>",
      "start_year": <year>,
      "start_month": "<month name or number>",
      "end_year": <year or "present">,
      "end_month": "<month name or number>",
      "description": "<one sentence>"
    }
  ]
}`, resumeText)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
