package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/resume-screener/internal/logger"
)

type geminiJudge struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

// NewGeminiJudge creates a JudgeService backed by the Gemini API. baseURL is
// optional and overrides the API endpoint.
func NewGeminiJudge(ctx context.Context, apiKey, model string, temperature float32, baseURL string) (JudgeService, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiJudge{
		client:      client,
		modelName:   model,
		temperature: temperature,
	}, nil
}

func (g *geminiJudge) Complete(ctx context.Context, systemInstruction, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
	}
	if systemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		}
	}

	logger.Debug().Str("provider", "gemini").Str("model", g.modelName).Str("prompt", logger.Truncate(prompt, 500)).Msg("judge request")

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini returned nil response: %w", ErrEmptyResponse)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || strings.TrimSpace(part.Text) == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
		break
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	logger.Debug().Str("provider", "gemini").Str("response", logger.Truncate(text, 500)).Msg("judge response")
	return text, nil
}
