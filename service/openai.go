package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/TahoorBR/LegalAdvisor/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService calls an OpenAI-compatible chat completion API. The base URL
// is configurable so locally hosted compatible backends work as well. It
// implements analyzer.Generator.
type OpenAIService struct {
	client *openai.Client
	config *config.OpenAIConfig
}

func NewOpenAIService(cfg *config.OpenAIConfig) *OpenAIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	return &OpenAIService{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// HasAPIKey reports whether an API key is configured.
func (s *OpenAIService) HasAPIKey() bool {
	return s.config.APIKey != ""
}

// Generate sends a prompt to the given model and returns the raw response
// text. No retries; any backend error is returned as-is.
func (s *OpenAIService) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
