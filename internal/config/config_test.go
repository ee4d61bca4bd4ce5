package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JUDGE_PROVIDER", "")
	t.Setenv("JUDGE_TIMEOUT", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, JudgeProviderGemini, cfg.Judge.Provider)
	assert.Equal(t, 60*time.Second, cfg.Judge.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Judge.RetryInitialDelay)
	assert.InDelta(t, 0.4, cfg.Judge.Temperature, 1e-6)
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JUDGE_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("JUDGE_TIMEOUT", "not-a-duration")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, JudgeProviderOpenAI, cfg.Judge.Provider)
	assert.Equal(t, "sk-test", cfg.Judge.OpenAIAPIKey)
	assert.Equal(t, 60*time.Second, cfg.Judge.Timeout)
	assert.Equal(t, 5, cfg.Judge.RetryMaxAttempts)
	assert.True(t, cfg.Storage.Minio.UseSSL)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
}

func validConfig() *Config {
	return &Config{
		Judge: JudgeConfig{
			Provider:         JudgeProviderGemini,
			GeminiAPIKey:     "key",
			Timeout:          time.Second,
			RetryMaxAttempts: 1,
		},
		Storage: StorageConfig{Driver: StorageDriverLocal},
		Worker:  WorkerConfig{Concurrency: 1},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown provider", func(c *Config) { c.Judge.Provider = "llama" }, `unknown JUDGE_PROVIDER "llama"`},
		{"missing gemini key", func(c *Config) { c.Judge.GeminiAPIKey = "" }, "GEMINI_API_KEY is required"},
		{"missing openai key", func(c *Config) { c.Judge.Provider = JudgeProviderOpenAI }, "OPENAI_API_KEY is required"},
		{"no attempts", func(c *Config) { c.Judge.RetryMaxAttempts = 0 }, "RETRY_MAX_ATTEMPTS"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "ftp" }, `unknown STORAGE_DRIVER "ftp"`},
		{"minio without credentials", func(c *Config) { c.Storage.Driver = StorageDriverMinio }, "MINIO_ACCESS_KEY"},
		{"no workers", func(c *Config) { c.Worker.Concurrency = 0 }, "WORKER_CONCURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
