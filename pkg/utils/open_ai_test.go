package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITextClient_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body.Model)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "Plan a trip", body.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Day 1\n- Museum"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAITextClient("test-key", "gpt-test", server.URL+"/v1")

	text, err := client.GenerateText(context.Background(), "Plan a trip")
	require.NoError(t, err)
	assert.Equal(t, "Day 1\n- Museum", text)
}

func TestOpenAITextClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer server.Close()

	client := NewOpenAITextClient("test-key", "", server.URL+"/v1")

	_, err := client.GenerateText(context.Background(), "Plan a trip")
	assert.Error(t, err)
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), "llama", "key", "", "")
	assert.Error(t, err)
}
