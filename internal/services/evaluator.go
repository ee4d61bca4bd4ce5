package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/screening"
)

const evaluationErrorSummary = "Evaluation error."

// Evaluator turns extracted resume fields, a job description and an optional
// cover letter into a complete EvaluationResult.
type Evaluator interface {
	Evaluate(ctx context.Context, fields models.ResumeFields, jobDescription, coverLetter string) models.EvaluationResult
}

type EvaluatorOption func(*evaluator)

// WithClock sets the time source used for open-ended employment spans.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(e *evaluator) {
		e.now = now
	}
}

type evaluator struct {
	judge         JudgeService
	coverLetters  CoverLetterAnalyzer
	promptBuilder *PromptBuilder
	now           func() time.Time
}

func NewEvaluator(judge JudgeService, coverLetters CoverLetterAnalyzer, opts ...EvaluatorOption) Evaluator {
	e := &evaluator{
		judge:         judge,
		coverLetters:  coverLetters,
		promptBuilder: NewPromptBuilder(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate never fails. The judge only supplies score, summary, strengths and
// weaknesses; every other key is computed here. When the judge call or its
// response fails, the result carries score 0 and the "Evaluation error."
// summary with the computed fields intact.
func (e *evaluator) Evaluate(ctx context.Context, fields models.ResumeFields, jobDescription, coverLetter string) models.EvaluationResult {
	result := e.heuristics(ctx, fields, jobDescription, coverLetter)

	prompt := e.promptBuilder.BuildScoringPrompt(ScoringInput{
		ResumeText:         screening.ResumeText(fields),
		JobDescription:     jobDescription,
		ResumeQualityScore: result.ResumeQualityScore,
		ExperienceYears:    result.ExperienceYears,
		SkillsMatchedPct:   result.SkillsMatchedPct,
		EducationLevel:     result.EducationLevel,
		TechnicalSkills:    result.TechnicalSkills,
		SoftSkills:         result.SoftSkills,
		Certifications:     result.Certifications,
	})

	response, err := e.judge.Complete(ctx, JSONOnlyInstruction, prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("scoring request failed")
		result.Summary = evaluationErrorSummary
		return result
	}

	judgement, err := decodeJudgement(response)
	if err != nil {
		logger.Warn().Err(err).Str("response", logger.Truncate(response, 300)).Msg("scoring response unusable")
		result.Summary = evaluationErrorSummary
		return result
	}

	if score, ok := judgementNumber(judgement, "score"); ok {
		result.Score = clampPercent(score)
	}
	result.Summary = judgementString(judgement, "summary")
	result.Strengths = judgementString(judgement, "strengths")
	result.Weaknesses = judgementString(judgement, "weaknesses")

	logger.Info().
		Int("score", result.Score).
		Float64("experience_years", result.ExperienceYears).
		Str("education_level", result.EducationLevel).
		Float64("skills_matched_pct", result.SkillsMatchedPct).
		Int("resume_quality_score", result.ResumeQualityScore).
		Msg("resume evaluated")

	return result
}

// heuristics runs the independent extractors concurrently and returns a
// result holding every computed field. Score and narrative fields are empty.
func (e *evaluator) heuristics(ctx context.Context, fields models.ResumeFields, jobDescription, coverLetter string) models.EvaluationResult {
	resumeText := screening.ResumeText(fields)
	now := e.now()

	result := models.EvaluationResult{
		EducationLevel:    models.EducationOther,
		TechnicalSkills:   []string{},
		SoftSkills:        []string{},
		Certifications:    fields.Text(models.FieldCertifications),
		CoverLetterReport: FailedCoverLetterReport(),
	}

	var g errgroup.Group
	run := func(name string, fn func()) {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().Str("extractor", name).Interface("panic", r).Msg("extractor panicked")
				}
			}()
			fn()
			return nil
		})
	}

	run("experience", func() {
		result.ExperienceYears = screening.ExperienceYears(fields.Experience(), now)
	})
	run("education", func() {
		result.EducationLevel = screening.EducationLevelOf(fields.Values(models.FieldEducation))
	})
	run("technical_skills", func() {
		skills := screening.TechnicalSkills(fields.Values(models.FieldTechnicalSkills), resumeText)
		result.TechnicalSkills = skills
		result.SkillsMatchedPct = screening.SkillMatchPct(skills, jobDescription)
	})
	run("soft_skills", func() {
		result.SoftSkills = screening.SoftSkills(resumeText, coverLetter)
	})
	run("links", func() {
		links := screening.ExtractLinks(resumeText)
		result.PortfolioURL = links.Portfolio
		result.GithubURL = links.Github
		result.LinkedinURL = links.Linkedin
	})
	run("quality", func() {
		result.ResumeQualityScore = screening.QualityScore(resumeText)
	})
	run("cover_letter", func() {
		result.CoverLetterReport = e.coverLetters.Analyze(ctx, resumeText, coverLetter)
	})

	_ = g.Wait()

	if result.TechnicalSkills == nil {
		result.TechnicalSkills = []string{}
	}
	if result.SoftSkills == nil {
		result.SoftSkills = []string{}
	}
	if result.CoverLetterReport.Issues == nil {
		result.CoverLetterReport.Issues = []string{}
	}
	return result
}
