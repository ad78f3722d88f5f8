package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/logging"
)

const (
	DefaultChatMaxTokens    = 1024
	DefaultExtractMaxTokens = 2048
)

// ChatTurn is the assistant's answer plus the progress signals it carries.
type ChatTurn struct {
	Reply            string          `json:"content"`
	CategoryComplete domain.Category `json:"categoryComplete,omitempty"`
	AllComplete      bool            `json:"allComplete"`
}

type chatEnvelope struct {
	Reply            string `json:"reply"`
	CategoryComplete string `json:"categoryComplete"`
	AllComplete      bool   `json:"allComplete"`
}

// ChatService runs the interviewing conversation.
type ChatService struct {
	provider  Provider
	maxTokens int
}

func NewChatService(p Provider, maxTokens int) *ChatService {
	if maxTokens <= 0 {
		maxTokens = DefaultChatMaxTokens
	}
	return &ChatService{provider: p, maxTokens: maxTokens}
}

// Reply sends the conversation with the collected data and parses the
// model's envelope. Text that is not a valid envelope is returned verbatim
// as the reply, with no progress signal.
func (s *ChatService) Reply(ctx context.Context, messages []Message, data domain.ProjectData) (ChatTurn, error) {
	if s.provider == nil {
		return ChatTurn{}, ErrNotConfigured
	}
	logger := logging.NewLogger(ctx)

	text, err := s.provider.Complete(ctx, Request{
		System:    SystemPrompt(data),
		Messages:  messages,
		MaxTokens: s.maxTokens,
		JSON:      true,
	})
	if err != nil {
		return ChatTurn{}, fmt.Errorf("chat completion: %w", err)
	}

	turn := ParseChatTurn(text)
	if turn.CategoryComplete != "" || turn.AllComplete {
		logger.LogInfof("chat", "progress category=%s all=%t", turn.CategoryComplete, turn.AllComplete)
	}
	return turn, nil
}

// ParseChatTurn decodes a model answer. Unknown category keys are dropped.
func ParseChatTurn(text string) ChatTurn {
	env, err := ExtractJSON[chatEnvelope](text)
	if err != nil || strings.TrimSpace(env.Reply) == "" {
		return ChatTurn{Reply: strings.TrimSpace(text)}
	}

	turn := ChatTurn{Reply: env.Reply, AllComplete: env.AllComplete}
	if c, err := domain.ParseCategory(env.CategoryComplete); err == nil {
		turn.CategoryComplete = c
	}
	return turn
}
