package openaicompat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agent-discovery/pkg/openaicompat"
)

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
			return
		}

		var req struct {
			Model    string                 `json:"model"`
			Messages []openaicompat.Message `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model != "qwen-plus" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer ts.Close()

	t.Run("Success Flow", func(t *testing.T) {
		client, err := openaicompat.New(openaicompat.Config{APIKey: "test-key", BaseURL: ts.URL + "/", Model: "qwen-plus"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.ChatCompletion(context.Background(), &openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "ping"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "ok" || resp.Usage.TotalTokens != 4 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		client, _ := openaicompat.New(openaicompat.Config{APIKey: "wrong", BaseURL: ts.URL, Model: "qwen-plus"})

		_, err := client.ChatCompletion(context.Background(), &openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "ping"}},
		})
		var apiErr *openaicompat.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != "invalid api key" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	cases := []openaicompat.Config{
		{BaseURL: "http://x", Model: "m"},
		{APIKey: "k", Model: "m"},
		{APIKey: "k", BaseURL: "http://x"},
	}
	for _, cfg := range cases {
		if _, err := openaicompat.New(cfg); err == nil {
			t.Errorf("expected validation error for %+v", cfg)
		}
	}
}
