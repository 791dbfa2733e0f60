package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

// chat keeps at most this many prior turns to stay inside token limits.
const chatHistoryLimit = 10

var ErrEmptyMessage = errors.New("message required")

// Chat answers a follow-up question with the assembled context string and
// the recent conversation.
func (c *Client) Chat(ctx context.Context, message, contextString string, history []models.ChatMessage) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	messages := []llms.MessageContent{systemMessage(models.ChatSystemPrompt)}

	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}
	for _, msg := range history {
		messages = append(messages, historyMessage(msg))
	}

	prompt := fmt.Sprintf(models.ChatPromptTemplate, contextString, message)
	messages = append(messages, humanMessage(prompt))

	return c.generate(ctx, c.cfg.ChatTokens, messages)
}
