// Package llm talks to the chat-completions provider: full-deck design
// analysis, per-slide analysis and the follow-up chat.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SFZPL/prezlab-brain/internal/config"
	"github.com/SFZPL/prezlab-brain/internal/models"
)

var (
	// ErrMissingAPIKey blocks any call before it leaves the process.
	ErrMissingAPIKey = errors.New("OpenAI API key required")

	// ErrMalformedResponse means the model did not return the JSON document
	// it was asked for. The raw text is logged for diagnosis.
	ErrMalformedResponse = errors.New("model response is not valid JSON")
)

type Client struct {
	cfg config.LLMConfig
	log zerolog.Logger
}

func New(cfg config.LLMConfig, log zerolog.Logger) *Client {
	return &Client{cfg: cfg, log: log.With().Str("component", "llm").Logger()}
}

// generate runs one chat-completion call and returns the assistant text.
func (c *Client) generate(ctx context.Context, maxTokens int, messages []llms.MessageContent) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(c.cfg.APIKey, "Bearer ")),
		openai.WithModel(c.cfg.Model),
	}
	if c.cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(c.cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return "", fmt.Errorf("init llm: %w", err)
	}

	resp, err := llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(c.cfg.Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Content, nil
}

func systemMessage(text string) llms.MessageContent {
	return llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextContent{Text: text}},
	}
}

func humanMessage(text string) llms.MessageContent {
	return llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextContent{Text: text}},
	}
}

func historyMessage(msg models.ChatMessage) llms.MessageContent {
	role := llms.ChatMessageTypeHuman
	if msg.Role == "assistant" {
		role = llms.ChatMessageTypeAI
	}
	return llms.MessageContent{
		Role:  role,
		Parts: []llms.ContentPart{llms.TextContent{Text: msg.Content}},
	}
}

// stripCodeFences removes the markdown fencing models like to wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
