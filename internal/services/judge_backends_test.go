package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIJudgeComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": " {\"score\": 90} "}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	judge := NewOpenAIJudge("test-key", "gpt-4o-mini", 0.4, srv.URL+"/v1")
	out, err := judge.Complete(context.Background(), JSONOnlyInstruction, "rate this")

	require.NoError(t, err)
	assert.Equal(t, `{"score": 90}`, out)
	assert.Equal(t, "gpt-4o-mini", body["model"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, JSONOnlyInstruction, messages[0].(map[string]any)["content"])
	assert.Equal(t, "rate this", messages[1].(map[string]any)["content"])
	assert.Equal(t, "json_object", body["response_format"].(map[string]any)["type"])
}

func TestOpenAIJudgeErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error": {"message": "boom", "type": "server_error"}}`},
		{name: "no choices", status: http.StatusOK, body: `{"id": "x", "choices": []}`},
		{name: "blank content", status: http.StatusOK, body: `{"id": "x", "choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAIJudge("test-key", "gpt-4o-mini", 0.4, srv.URL+"/v1").Complete(context.Background(), "", "prompt")

			assert.Error(t, err)
		})
	}
}

func TestGeminiJudgeComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "thinking about it", "thought": true},
					{"text": "{\"score\": "},
					{"text": "75}"}
				]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer srv.Close()

	judge, err := NewGeminiJudge(context.Background(), "test-key", "gemini-2.5-flash", 0.4, srv.URL+"/")
	require.NoError(t, err)

	out, err := judge.Complete(context.Background(), JSONOnlyInstruction, "rate this")

	require.NoError(t, err)
	assert.Equal(t, `{"score": 75}`, out)

	config, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", config["responseMimeType"])
	assert.Contains(t, body, "systemInstruction")
}

func TestGeminiJudgeEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	judge, err := NewGeminiJudge(context.Background(), "test-key", "gemini-2.5-flash", 0.4, srv.URL+"/")
	require.NoError(t, err)

	_, err = judge.Complete(context.Background(), "", "prompt")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}
