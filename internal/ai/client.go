package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azpdscc/website-api/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no model provider credential is present.
// Callers surface it as a "service not configured" message instead of failing
// the whole request pipeline.
var ErrNotConfigured = errors.New("ai: model provider is not configured")

// Client is the minimal surface a flow needs from the model provider:
// send one prompt, get one JSON document back. No retries, no streaming.
type Client interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// openaiClient is the hosted-model implementation of Client
type openaiClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a model client from configuration. It returns
// ErrNotConfigured when the API key is missing so the caller can decide
// to run with flows disabled.
func NewClient(cfg *config.AIConfig) (Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	return &openaiClient{
		api:     openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateJSON sends a single chat completion request in JSON mode and
// returns the raw document. Schema validation belongs to each flow.
func (c *openaiClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
