package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/starthobby/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIService(baseURL string, maxRetries int) OpenAIService {
	return NewOpenAIService(&config.Config{OpenAI: config.OpenAI{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Model:          "test-model",
		TimeoutSeconds: 5,
		MaxRetries:     maxRetries,
	}})
}

func TestCompleteChatSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-model", payload["model"])
		messages, ok := payload["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		assert.NotNil(t, payload["temperature"])
		assert.NotNil(t, payload["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": "hello"}},
			},
		})
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, 0)
	content, err := svc.CompleteChat(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestCompleteChatSurfacesUpstreamErrorMessage(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid model"}}`))
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, 3)
	_, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusBadRequest, uerr.StatusCode)
	assert.Equal(t, "invalid model", uerr.Message)
	assert.Contains(t, err.Error(), "invalid model")
	// 4xx other than 429 is permanent: no retries despite the budget.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCompleteChatGenericMarkerWithoutUpstreamMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("forbidden"))
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, 0)
	_, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Empty(t, uerr.Message)
	assert.Contains(t, err.Error(), "status 403")
}

func TestCompleteChatRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": "recovered"}},
			},
		})
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, 2)
	content, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "recovered", content)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCompleteChatNegativeRetryBudget(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, -3)
	_, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.Error(t, err)
	// A misconfigured negative budget means no retries, not unbounded ones.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCompleteChatEmptyResponse(t *testing.T) {
	cases := map[string]string{
		"no choices":    `{"choices":[]}`,
		"empty content": `{"choices":[{"message":{"content":"  "}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			svc := newTestOpenAIService(server.URL, 0)
			_, err := svc.CompleteChat(context.Background(), "sys", "user")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyResponse))
		})
	}
}

func TestCompleteChatErrorPayloadOn200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	svc := newTestOpenAIService(server.URL, 0)
	_, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "quota exceeded", uerr.Message)
}

func TestCompleteChatMissingAPIKey(t *testing.T) {
	svc := NewOpenAIService(&config.Config{OpenAI: config.OpenAI{BaseURL: "http://localhost:0"}})
	_, err := svc.CompleteChat(context.Background(), "sys", "user")
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Message, "OPENAI_API_KEY")
}
