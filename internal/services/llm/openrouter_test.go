package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterClient_Validation(t *testing.T) {
	_, err := NewOpenRouterClient(nil)
	assert.Error(t, err)

	_, err = NewOpenRouterClient(&OpenRouterConfig{APIKey: "key"})
	assert.Error(t, err)

	_, err = NewOpenRouterClient(&OpenRouterConfig{BaseURL: "https://example.com"})
	assert.Error(t, err)

	client, err := NewOpenRouterClient(&OpenRouterConfig{BaseURL: "https://example.com", APIKey: "key"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestComplete_Success(t *testing.T) {
	// Arrange
	var gotAuth string
	var gotBody chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "test-model",
			"choices": [{"message": {"role": "assistant", "content": "Which bank?"}}]
		}`))
	}))
	defer server.Close()

	client, err := NewOpenRouterClient(&OpenRouterConfig{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)

	// Act
	resp, err := client.Complete(context.Background(), &Request{
		Model: "test-model",
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "system"},
			{Role: RoleUser, Content: "hello"},
		},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Which bank?", resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	assert.Len(t, gotBody.Messages, 2)
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewOpenRouterClient(&OpenRouterConfig{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), &Request{
		Model:    "test-model",
		Messages: []ChatMessage{{Role: RoleUser, Content: "hello"}},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "429")
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model": "test-model", "choices": []}`))
	}))
	defer server.Close()

	client, err := NewOpenRouterClient(&OpenRouterConfig{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), &Request{
		Model:    "test-model",
		Messages: []ChatMessage{{Role: RoleUser, Content: "hello"}},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestComplete_RequiresMessages(t *testing.T) {
	client, err := NewOpenRouterClient(&OpenRouterConfig{BaseURL: "https://example.com", APIKey: "secret"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), nil)
	assert.Error(t, err)

	_, err = client.Complete(context.Background(), &Request{Model: "test-model"})
	assert.Error(t, err)
}
