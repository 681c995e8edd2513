package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		config  Config
	}{
		{name: "anthropic", config: Config{Provider: "anthropic", APIKey: "k"}},
		{name: "default provider", config: Config{APIKey: "k"}},
		{name: "anthropic without key", config: Config{Provider: "anthropic"}, wantErr: common.ErrMissingConfig},
		{name: "gemini without key", config: Config{Provider: "gemini"}, wantErr: common.ErrMissingConfig},
		{name: "unknown provider", config: Config{Provider: "openai", APIKey: "k"}, wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestAnthropicClient_Complete(t *testing.T) {
	var captured anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[{"type":"text","text":"[]"}]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL, Temperature: 0.3})
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	assert.Equal(t, "system text", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "user text", captured.Messages[0].Content)
	assert.Equal(t, 1024, captured.MaxTokens)
}

func TestAnthropicClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		status    int
		retryable bool
		rateLimit bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, retryable: true, rateLimit: true},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, retryable: true},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad"}`, retryable: false},
		{name: "empty content", status: http.StatusOK, body: `{"content":[]}`, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := newAnthropicClient(Config{APIKey: "k", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), "", "hi")
			require.Error(t, err)
			if tt.rateLimit {
				assert.ErrorIs(t, err, common.ErrRateLimit)
			}

			var final *common.RetryableError
			isFinal := errors.As(err, &final) && !final.Retryable
			assert.Equal(t, !tt.retryable, isFinal)
		})
	}
}
