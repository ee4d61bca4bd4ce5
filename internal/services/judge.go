package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"alfredoptarigan/resume-screener/internal/logger"
)

// JSONOnlyInstruction is the system instruction sent with every judge request.
const JSONOnlyInstruction = "You return valid JSON output only. No extra explanations."

var (
	ErrEmptyResponse      = errors.New("judge returned an empty response")
	ErrMalformedJudgement = errors.New("judge response is not a JSON object")
)

// JudgeService is the semantic judgment collaborator: a system instruction and
// a prompt go in, free text expected to hold a JSON object comes out.
type JudgeService interface {
	Complete(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// RetryPolicy bounds calls to a JudgeService. Timeout applies per attempt;
// zero disables it.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Timeout      time.Duration
}

type retryingJudge struct {
	next   JudgeService
	policy RetryPolicy
}

// NewRetryingJudge wraps next so that failed or empty completions are retried
// with exponential backoff. Cancelling ctx stops retrying immediately.
func NewRetryingJudge(next JudgeService, policy RetryPolicy) JudgeService {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &retryingJudge{next: next, policy: policy}
}

func (r *retryingJudge) Complete(ctx context.Context, systemInstruction, prompt string) (string, error) {
	var (
		text    string
		attempt int
	)

	operation := func() error {
		attempt++

		callCtx, cancel := ctx, context.CancelFunc(func() {})
		if r.policy.Timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, r.policy.Timeout)
		}
		defer cancel()

		out, err := r.next.Complete(callCtx, systemInstruction, prompt)
		if err == nil && strings.TrimSpace(out) == "" {
			err = ErrEmptyResponse
		}
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			logger.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", r.policy.MaxAttempts).Msg("judge call failed")
			return err
		}

		text = out
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.InitialDelay
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.policy.MaxAttempts-1)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("failed after %d attempts: %w", attempt, err)
	}
	return text, nil
}

// stripCodeFence removes a Markdown code fence wrapped around a response.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```JSON")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}

// decodeJudgement strictly parses a judge response into a JSON object. Only a
// surrounding code fence is tolerated; prose around the object is an error.
func decodeJudgement(raw string) (map[string]json.RawMessage, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJudgement, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: null", ErrMalformedJudgement)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedJudgement)
	}
	return obj, nil
}

// judgementString reads key as a string. Non-string values are flattened to
// their JSON text; a missing key is "".
func judgementString(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// judgementNumber reads key as a finite number, accepting numeric strings. ok
// is false for missing, non-numeric, NaN or infinite values.
func judgementNumber(obj map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var parsed float64
		_, err := fmt.Sscanf(strings.TrimSpace(s), "%g", &parsed)
		if err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return parsed, true
		}
	}
	return 0, false
}

// judgementStrings reads key as a list of strings; a single string becomes a
// one-element list.
func judgementStrings(obj map[string]json.RawMessage, key string) ([]string, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, false
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		return list, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return []string{}, true
		}
		return []string{s}, true
	}
	return nil, false
}
