package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"alfredoptarigan/resume-screener/internal/logger"
)

type openAIJudge struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIJudge creates a JudgeService backed by the OpenAI chat completions
// API. baseURL is optional and overrides the API endpoint.
func NewOpenAIJudge(apiKey, model string, temperature float32, baseURL string) JudgeService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIJudge{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

func (o *openAIJudge) Complete(ctx context.Context, systemInstruction, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	logger.Debug().Str("provider", "openai").Str("model", o.model).Str("prompt", logger.Truncate(prompt, 500)).Msg("judge request")

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: o.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices: %w", ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	logger.Debug().Str("provider", "openai").Str("response", logger.Truncate(text, 500)).Msg("judge response")
	return text, nil
}
