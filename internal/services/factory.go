package services

import (
	"context"
	"fmt"

	"alfredoptarigan/resume-screener/internal/config"
)

// NewJudge builds the configured judge backend wrapped in the retry policy.
func NewJudge(ctx context.Context, cfg config.JudgeConfig) (JudgeService, error) {
	var (
		backend JudgeService
		err     error
	)

	switch cfg.Provider {
	case config.JudgeProviderGemini:
		backend, err = NewGeminiJudge(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Temperature, "")
		if err != nil {
			return nil, err
		}
	case config.JudgeProviderOpenAI:
		backend = NewOpenAIJudge(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Temperature, "")
	default:
		return nil, fmt.Errorf("unknown judge provider %q", cfg.Provider)
	}

	return NewRetryingJudge(backend, RetryPolicy{
		MaxAttempts:  cfg.RetryMaxAttempts,
		InitialDelay: cfg.RetryInitialDelay,
		Timeout:      cfg.Timeout,
	}), nil
}

// NewStorage builds the configured storage backend and makes sure it is
// ready to accept uploads.
func NewStorage(ctx context.Context, cfg config.StorageConfig) (StorageService, error) {
	var (
		storage StorageService
		err     error
	)

	switch cfg.Driver {
	case config.StorageDriverLocal:
		storage = NewLocalStorage(cfg.UploadPath)
	case config.StorageDriverMinio:
		storage, err = NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if err := storage.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return storage, nil
}
