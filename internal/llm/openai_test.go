package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shikha-bhatt/ct-hackathon-2025/internal/config"
)

func testConfig(endpoint string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		APIKey:         "test-key",
		Endpoint:       endpoint,
		DeploymentName: "gpt-4o",
		APIVersion:     "2024-02-15-preview",
		MaxTokens:      256,
		Temperature:    0.7,
		Timeout:        5 * time.Second,
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotAPIKey, gotAPIVersion string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		gotAPIVersion = r.URL.Query().Get("api-version")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "first answer"}, "finish_reason": "stop"},
				{"message": {"role": "assistant", "content": "second answer"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30}
		}`))
	}))
	defer ts.Close()

	gateway, err := NewAzureOpenAI(testConfig(ts.URL))
	assert.NoError(t, err)

	reply, err := gateway.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a travel expert."},
		{Role: RoleUser, Content: "Tell me about Japan."},
	})
	assert.NoError(t, err)

	assert.Equal(t, "first answer", reply.Content)
	assert.Equal(t, "stop", reply.FinishReason)
	assert.Equal(t, int64(30), reply.Usage.TotalTokens)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "2024-02-15-preview", gotAPIVersion)
}

func TestCompleteEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 0}}`))
	}))
	defer ts.Close()

	gateway, err := NewAzureOpenAI(testConfig(ts.URL))
	assert.NoError(t, err)

	reply, err := gateway.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	assert.Nil(t, reply)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteRejectedByEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer ts.Close()

	gateway, err := NewAzureOpenAI(testConfig(ts.URL))
	assert.NoError(t, err)

	reply, err := gateway.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	assert.Nil(t, reply)

	var rejected *RejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusUnauthorized, rejected.Status)
}

func TestCompleteEndpointUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := ts.URL
	ts.Close()

	gateway, err := NewAzureOpenAI(testConfig(endpoint))
	assert.NoError(t, err)

	reply, err := gateway.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	assert.Nil(t, reply)

	var unavailable *UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
