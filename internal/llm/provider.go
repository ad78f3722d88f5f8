// Package llm holds the language-model collaborators of the wizard: the
// interviewing chat and the transcript-to-ProjectData extractor.
package llm

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("llm provider not configured")
	ErrInvalidOutput = errors.New("invalid llm output")
	ErrEmptyResponse = errors.New("llm returned no text")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the wizard conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-neutral completion request.
type Request struct {
	System    string
	Messages  []Message
	MaxTokens int
	// JSON asks providers that support it for a JSON-only answer.
	JSON bool
}

// Provider completes a conversation and returns the model's text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// trimLeadingAssistant drops assistant turns that precede the first user
// turn; the greeting is produced locally and never sent by the model.
func trimLeadingAssistant(msgs []Message) []Message {
	for i, m := range msgs {
		if m.Role == RoleUser {
			return msgs[i:]
		}
	}
	return nil
}
