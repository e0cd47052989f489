package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the backend answers with no choices
var ErrEmptyCompletion = errors.New("openai returned empty choices")

// Client wraps the OpenAI API client
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      zerolog.Logger
}

// ClientOptions fixes the model and sampling parameters for every call
type ClientOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// NewClient creates a new OpenAI client
func NewClient(options ClientOptions) *Client {
	cfg := openai.DefaultConfig(options.APIKey)
	if options.BaseURL != "" {
		cfg.BaseURL = options.BaseURL
	}
	if options.Model == "" {
		options.Model = openai.GPT4o
	}
	if options.MaxTokens == 0 {
		options.MaxTokens = 512
	}

	return &Client{
		client:      openai.NewClientWithConfig(cfg),
		model:       options.Model,
		temperature: float32(options.Temperature),
		maxTokens:   options.MaxTokens,
		logger:      log.With().Str("component", "openai_client").Logger(),
	}
}

// Model returns the configured model id
func (c *Client) Model() string {
	return c.model
}

// Complete sends a system instruction and user prompt and returns the completion text
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("prompt_len", len(prompt)).Msg("Sending prompt to OpenAI")

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		},
	)

	if err != nil {
		c.logger.Error().Err(err).Msg("OpenAI API error")
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("OpenAI returned empty choices")
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
