// Package llm adapts a hosted OpenAI-compatible model to the TextGenerator port.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmptyResponse is returned when the model produced no choices.
var ErrEmptyResponse = errors.New("llm returned no choices")

// Config configures the model client.
type Config struct {
	// BaseURL of an OpenAI-compatible API. Empty uses the OpenAI default.
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("llm: API key is required")
	}
	if c.Model == "" {
		return errors.New("llm: model is required")
	}
	return nil
}

// Client generates text with a langchaingo model.
type Client struct {
	model   llms.Model
	timeout time.Duration
}

var _ portssvc.TextGenerator = (*Client)(nil)

// New creates a client for an OpenAI-compatible endpoint.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("llm: create openai client: %w", err)
	}
	return NewWithModel(model, cfg.Timeout), nil
}

// NewWithModel wraps an existing langchaingo model.
func NewWithModel(model llms.Model, timeout time.Duration) *Client {
	return &Client{model: model, timeout: timeout}
}

// Generate sends the prompt as a system and a human message. An image, when present,
// is attached to the human message.
func (c *Client) Generate(ctx context.Context, p portssvc.Prompt) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	human := []llms.ContentPart{llms.TextPart(p.User)}
	if p.ImageURL != "" {
		human = append(human, llms.ImageURLPart(p.ImageURL))
	}
	messages := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextPart(p.System)}},
		{Role: llms.ChatMessageTypeHuman, Parts: human},
	}

	var opts []llms.CallOption
	if p.JSON {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("llm: generate %s: %w", p.Flow, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
