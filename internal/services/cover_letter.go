package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
)

const (
	noCoverLetterAnalysis       = "No cover letter provided."
	noCoverLetterRecommendation = "Cover letter missing - request one from candidate."

	failedCoverLetterAnalysis       = "Cover letter analysis failed."
	failedCoverLetterRecommendation = "Review the cover letter manually."
)

// CoverLetterAnalyzer flags cover letters that are unsupported by the resume
// or likely machine generated.
type CoverLetterAnalyzer interface {
	Analyze(ctx context.Context, resumeText, coverLetter string) models.CoverLetterReport
}

type coverLetterAnalyzer struct {
	judge         JudgeService
	promptBuilder *PromptBuilder
}

func NewCoverLetterAnalyzer(judge JudgeService) CoverLetterAnalyzer {
	return &coverLetterAnalyzer{
		judge:         judge,
		promptBuilder: NewPromptBuilder(),
	}
}

// MissingCoverLetterReport is the neutral report for an application without a
// cover letter.
func MissingCoverLetterReport() models.CoverLetterReport {
	return models.CoverLetterReport{
		Analysis:       noCoverLetterAnalysis,
		Issues:         []string{},
		AIProbability:  0,
		Recommendation: noCoverLetterRecommendation,
	}
}

// FailedCoverLetterReport marks an analysis that could not be completed.
// AIProbability -1 distinguishes it from a confident 0.
func FailedCoverLetterReport() models.CoverLetterReport {
	return models.CoverLetterReport{
		Analysis:       failedCoverLetterAnalysis,
		Issues:         []string{},
		AIProbability:  -1,
		Recommendation: failedCoverLetterRecommendation,
	}
}

// Analyze never fails: a blank cover letter yields the missing report without
// calling the judge, and any judge or parse failure yields the failed report.
func (a *coverLetterAnalyzer) Analyze(ctx context.Context, resumeText, coverLetter string) models.CoverLetterReport {
	if strings.TrimSpace(coverLetter) == "" {
		return MissingCoverLetterReport()
	}

	prompt := a.promptBuilder.BuildCoverLetterPrompt(resumeText, coverLetter)
	response, err := a.judge.Complete(ctx, JSONOnlyInstruction, prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("cover letter analysis failed")
		return FailedCoverLetterReport()
	}

	report, err := parseCoverLetterReport(response)
	if err != nil {
		logger.Warn().Err(err).Str("response", logger.Truncate(response, 300)).Msg("cover letter analysis unusable")
		return FailedCoverLetterReport()
	}
	return report
}

func parseCoverLetterReport(response string) (models.CoverLetterReport, error) {
	obj, err := decodeJudgement(response)
	if err != nil {
		return models.CoverLetterReport{}, err
	}

	for _, key := range []string{"analysis", "issues", "ai_probability", "recommendation"} {
		if _, ok := obj[key]; !ok {
			return models.CoverLetterReport{}, fmt.Errorf("%w: missing %q", ErrMalformedJudgement, key)
		}
	}

	issues, ok := judgementStrings(obj, "issues")
	if !ok {
		return models.CoverLetterReport{}, fmt.Errorf("%w: issues is not a list", ErrMalformedJudgement)
	}
	probability, ok := judgementNumber(obj, "ai_probability")
	if !ok {
		return models.CoverLetterReport{}, fmt.Errorf("%w: ai_probability is not a number", ErrMalformedJudgement)
	}

	return models.CoverLetterReport{
		Analysis:       judgementString(obj, "analysis"),
		Issues:         issues,
		AIProbability:  clampPercent(probability),
		Recommendation: judgementString(obj, "recommendation"),
	}, nil
}

func clampPercent(v float64) int {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v + 0.5)
	}
}
