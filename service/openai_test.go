package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TahoorBR/LegalAdvisor/config"
)

func TestNewOpenAIService(t *testing.T) {
	svc := NewOpenAIService(&config.OpenAIConfig{
		APIKey:         "test-key",
		TimeoutSeconds: 30,
	})
	if svc == nil {
		t.Fatal("Expected non-nil service")
	}
	if !svc.HasAPIKey() {
		t.Error("Expected HasAPIKey to be true")
	}
}

func TestOpenAIServiceGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Expected Authorization header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "local-model",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "{\"summary\": \"ok\"}"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	svc := NewOpenAIService(&config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL + "/v1",
		TimeoutSeconds: 10,
	})

	text, err := svc.Generate(context.Background(), "local-model", "Analyze this contract.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != `{"summary": "ok"}` {
		t.Errorf("Expected response content, got %q", text)
	}
}

func TestOpenAIServiceGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	svc := NewOpenAIService(&config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL + "/v1",
		TimeoutSeconds: 10,
	})

	_, err := svc.Generate(context.Background(), "local-model", "prompt")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestOpenAIServiceGenerateBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "backend down", "type": "server_error"}}`))
	}))
	defer server.Close()

	svc := NewOpenAIService(&config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL + "/v1",
		TimeoutSeconds: 10,
	})

	_, err := svc.Generate(context.Background(), "local-model", "prompt")
	if err == nil {
		t.Fatal("Expected error")
	}
}
