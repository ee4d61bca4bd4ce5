package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

// ResumeFieldExtractor turns resume text into structured fields.
type ResumeFieldExtractor interface {
	Extract(ctx context.Context, text string) (models.ResumeFields, error)
}

type llmFieldExtractor struct {
	judge         JudgeService
	promptBuilder *PromptBuilder
}

// NewFieldExtractor asks the judge to extract the resume fields. The document
// text is kept under raw_text so heuristics see the original layout.
func NewFieldExtractor(judge JudgeService) ResumeFieldExtractor {
	return &llmFieldExtractor{
		judge:         judge,
		promptBuilder: NewPromptBuilder(),
	}
}

func (x *llmFieldExtractor) Extract(ctx context.Context, text string) (models.ResumeFields, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("failed to extract fields: %w", ErrEmptyResponse)
	}

	response, err := x.judge.Complete(ctx, JSONOnlyInstruction, x.promptBuilder.BuildFieldExtractionPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("failed to extract fields: %w", err)
	}

	obj, err := decodeJudgement(response)
	if err != nil {
		return nil, fmt.Errorf("failed to extract fields: %w", err)
	}

	fields := make(models.ResumeFields, len(obj)+1)
	for key, raw := range obj {
		var field models.Field
		if err := json.Unmarshal(raw, &field); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", key, err)
		}
		if len(field) > 0 {
			fields[key] = field
		}
	}
	fields[models.FieldRawText] = models.Field{models.Value(text)}

	return fields, nil
}
