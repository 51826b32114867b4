package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/starthobby/backend/config"
)

const (
	profileTemperature = 0.7
	profileMaxTokens   = 1024
)

// OpenAIService speaks the OpenAI-compatible chat-completions protocol.
// Implementations must bound each call with the configured timeout and a
// bounded retry budget; a hung upstream must not hold a handler open forever.
type OpenAIService interface {
	CompleteChat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type openAIService struct {
	cfg        config.OpenAI
	httpClient *http.Client
}

func NewOpenAIService(cfg *config.Config) OpenAIService {
	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. Profile generation will be non-functional.")
	}
	timeout := time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &openAIService{
		cfg:        cfg.OpenAI,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// CompleteChat posts a system+user message pair and returns the first choice's
// content. Transport errors, 429 and 5xx are retried with exponential backoff
// up to the configured budget; other failures are permanent.
func (s *openAIService) CompleteChat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", &UpstreamError{Message: "OPENAI_API_KEY is not configured"}
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: profileTemperature,
		MaxTokens:   profileMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	var content string
	operation := func() error {
		c, opErr := s.doChatRequest(ctx, body)
		if opErr != nil {
			return opErr
		}
		content = c
		return nil
	}

	// A negative budget would wrap around in the uint64 conversion.
	retries := s.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return content, nil
}

func (s *openAIService) doChatRequest(ctx context.Context, body []byte) (string, error) {
	endpoint := strings.TrimRight(s.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("build chat request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("Chat completion request failed, may retry")
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		uerr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractUpstreamMessage(respBody),
		}
		log.Warn().Int("status", resp.StatusCode).Str("message", uerr.Message).Msg("Chat completion returned non-2xx status")
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", uerr
		}
		return "", backoff.Permanent(uerr)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode chat response: %w", err))
	}
	if parsed.Error != nil {
		return "", backoff.Permanent(&UpstreamError{Message: parsed.Error.Message})
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", backoff.Permanent(ErrEmptyResponse)
	}
	return parsed.Choices[0].Message.Content, nil
}

func extractUpstreamMessage(body []byte) string {
	var payload struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil {
		return payload.Error.Message
	}
	return ""
}
