// Package notify delivers transactional email through Resend and feedback
// messages through a Slack incoming webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/metrics"
)

const (
	DefaultResendURL = "https://api.resend.com"
	DefaultFrom      = "Investor Deck <noreply@resend.dev>"
	DefaultTimeout   = 15 * time.Second
)

var (
	ErrNotConfigured = errors.New("email service not configured")
	ErrNoRecipient   = errors.New("email recipient is required")
)

// Message is one outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailClient posts messages to the Resend emails endpoint.
type EmailClient struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewEmailClient(baseURL, apiKey, from string) *EmailClient {
	if baseURL == "" {
		baseURL = DefaultResendURL
	}
	if from == "" {
		from = DefaultFrom
	}
	return &EmailClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Configured reports whether an API key is present.
func (c *EmailClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Send delivers msg. An empty From uses the client's default sender.
func (c *EmailClient) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if len(msg.To) == 0 || strings.TrimSpace(msg.To[0]) == "" {
		return ErrNoRecipient
	}
	if msg.From == "" {
		msg.From = c.from
	}

	logger := logging.NewLogger(ctx)
	start := time.Now()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Email, time.Since(start), err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Email, time.Since(start), err)
		logger.LogError("send_email", err)
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		err := fmt.Errorf("resend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		metrics.RecordUpstreamCall(metrics.Email, time.Since(start), err)
		logger.LogWarnf("send_email", "resend returned status %d", resp.StatusCode)
		return err
	}
	metrics.RecordUpstreamCall(metrics.Email, time.Since(start), nil)
	logger.LogInfof("send_email", "email sent to=%s subject=%q", logging.MaskEmail(msg.To[0]), msg.Subject)
	return nil
}
