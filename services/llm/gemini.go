package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// GeminiClient calls Google's Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	retry  retryPolicy
}

// NewGeminiClient creates a Gemini collaborator
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		retry:  newRetryPolicy("gemini", cfg.Timeout, cfg.MaxRetries, cfg.Backoff, log),
	}, nil
}

// Complete maps the conversation onto Gemini contents. System messages are
// merged into the system instruction and assistant turns use the model role.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	system, contents := geminiContents(req.Messages)

	temperature := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	return c.retry.run(ctx, func(ctx context.Context) (string, error) {
		resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
		if err != nil {
			return "", &ProviderError{Provider: "gemini", Message: err.Error(), Cause: err}
		}
		return resp.Text(), nil
	})
}

func geminiContents(messages []Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
